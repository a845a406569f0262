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

type fakeMethod struct {
	classID, methodID uint16
	args              EncodedMethod
}

func (m *fakeMethod) Decode(mf *MethodFrame) error {
	m.args = mf.Arguments
	return nil
}
func (m *fakeMethod) Encode() (EncodedMethod, error) { return m.args, nil }
func (m *fakeMethod) Name() string                   { return "fake.method" }
func (m *fakeMethod) ClassID() uint16                { return m.classID }
func (m *fakeMethod) ID() uint16                     { return m.methodID }

func TestDecodeMethodFrame(t *testing.T) {
	t.Run("requires a method frame", func(t *testing.T) {
		frame := &Frame{Type: FrameHeartbeat}
		_, err := DecodeMethodFrame(frame)
		require.Error(t, err)
		assert.True(t, IsProtocol(err))
	})

	t.Run("splits class/method id from arguments", func(t *testing.T) {
		frame := &Frame{Type: FrameMethod, Payload: []byte{0x00, 0x0a, 0x00, 0x32, 0xAA, 0xBB}}
		mf, err := DecodeMethodFrame(frame)
		require.NoError(t, err)
		assert.Equal(t, uint16(10), mf.ClassID)
		assert.Equal(t, uint16(50), mf.MethodID)
		assert.Equal(t, []byte{0xAA, 0xBB}, []byte(mf.Arguments))
	})
}

func TestMethodFrameValidate(t *testing.T) {
	mf := &MethodFrame{ClassID: 10, MethodID: 50}
	assert.NoError(t, mf.Validate(10, 50))

	err := mf.Validate(10, 51)
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}

func TestToFrameAndEncodeMethodFrame(t *testing.T) {
	m := &fakeMethod{classID: 60, methodID: 40, args: EncodedMethod{0x01, 0x02}}
	frame, err := ToFrame(m, 7)
	require.NoError(t, err)
	assert.Equal(t, FrameMethod, frame.Type)
	assert.Equal(t, uint16(7), frame.Channel)

	mf, err := DecodeMethodFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, uint16(60), mf.ClassID)
	assert.Equal(t, uint16(40), mf.MethodID)
	assert.Equal(t, []byte{0x01, 0x02}, []byte(mf.Arguments))
}
