// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package amqp091

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		f := &Frame{Type: FrameMethod, Channel: 3, Payload: []byte{0x00, 0x0a, 0x00, 0x0a}}
		b, err := f.Encode(0)
		require.NoError(t, err)

		got, err := DecodeFrame(bytes.NewReader(b), 0)
		require.NoError(t, err)
		assert.Equal(t, f.Type, got.Type)
		assert.Equal(t, f.Channel, got.Channel)
		assert.Equal(t, []byte(f.Payload), []byte(got.Payload))
	})

	t.Run("clean eof at a frame boundary", func(t *testing.T) {
		_, err := DecodeFrame(bytes.NewReader(nil), 0)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("bad end marker", func(t *testing.T) {
		raw := []byte{byte(FrameMethod), 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xAB, 0xFF}
		_, err := DecodeFrame(bytes.NewReader(raw), 0)
		require.Error(t, err)
		assert.True(t, IsProtocol(err))
	})

	t.Run("unknown frame type", func(t *testing.T) {
		raw := []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, frameEndMarker}
		_, err := DecodeFrame(bytes.NewReader(raw), 0)
		require.Error(t, err)
		assert.True(t, IsProtocol(err))
	})

	t.Run("over max frame size rejected before allocating payload", func(t *testing.T) {
		raw := []byte{byte(FrameMethod), 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
		_, err := DecodeFrame(bytes.NewReader(raw), 1024)
		require.Error(t, err)
		assert.True(t, IsProtocol(err))
	})

	t.Run("short read surfaces an IO error", func(t *testing.T) {
		raw := []byte{byte(FrameMethod), 0x00}
		_, err := DecodeFrame(bytes.NewReader(raw), 0)
		require.Error(t, err)
		assert.True(t, IsIO(err))
	})
}

func TestFrameTypeString(t *testing.T) {
	assert.Equal(t, "METHOD", FrameMethod.String())
	assert.Equal(t, "HEARTBEAT", FrameHeartbeat.String())
	assert.Equal(t, "UNKNOWN", FrameType(0xFE).String())
}

func TestFrameEncodeRejectsOversizePayload(t *testing.T) {
	f := &Frame{Type: FrameBody, Channel: 1, Payload: make([]byte, 10)}
	_, err := f.Encode(4)
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}
