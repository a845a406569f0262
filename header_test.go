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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHeaderFrameRoundTrip(t *testing.T) {
	ch := &ContentHeaderFrame{
		ContentClass:    ClassBasic,
		BodySize:        4096,
		PropertiesFlags: 0xC000,
		Properties:      EncodedProperties{0x01, 0x02, 0x03},
	}
	payload := ch.Encode()

	frame := &Frame{Type: FrameHeaders, Channel: 2, Payload: payload}
	got, err := DecodeContentHeaderFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, ch.ContentClass, got.ContentClass)
	assert.Equal(t, ch.BodySize, got.BodySize)
	assert.Equal(t, ch.PropertiesFlags, got.PropertiesFlags)
	assert.Equal(t, []byte(ch.Properties), []byte(got.Properties))
}

func TestDecodeContentHeaderFrameTooShort(t *testing.T) {
	frame := &Frame{Type: FrameHeaders, Payload: []byte{0x00, 0x3C}}
	_, err := DecodeContentHeaderFrame(frame)
	require.Error(t, err)
	assert.True(t, IsIO(err))
}

func TestCarriesContent(t *testing.T) {
	assert.True(t, CarriesContent(ClassBasic, 40))  // basic.publish
	assert.True(t, CarriesContent(ClassBasic, 60))  // basic.deliver
	assert.False(t, CarriesContent(ClassBasic, 80)) // basic.ack
	assert.False(t, CarriesContent(ClassQueue, 10))
}
