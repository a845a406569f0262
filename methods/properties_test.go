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

package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/amqp091"
)

func TestPropertiesRoundTrip(t *testing.T) {
	in := &BasicProperties{
		ContentType:   "application/json",
		DeliveryMode:  2,
		CorrelationId: "req-123",
		Timestamp:     1700000000,
		Headers:       amqp091.Table{{Key: "x-retry", Value: int32(1)}},
	}

	flags, data, err := EncodeProperties(in)
	require.NoError(t, err)
	assert.NotZero(t, flags&flagContentType)
	assert.NotZero(t, flags&flagDeliveryMode)
	assert.Zero(t, flags&flagReplyTo)

	out, err := DecodeProperties(flags, data)
	require.NoError(t, err)
	assert.Equal(t, in.ContentType, out.ContentType)
	assert.Equal(t, in.DeliveryMode, out.DeliveryMode)
	assert.Equal(t, in.CorrelationId, out.CorrelationId)
	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.True(t, out.Has(flagContentType))
	assert.False(t, out.Has(flagReplyTo))
	assert.Empty(t, out.ReplyTo)
}

func TestPropertiesEmpty(t *testing.T) {
	flags, data, err := EncodeProperties(&BasicProperties{})
	require.NoError(t, err)
	assert.Equal(t, uint16(0), flags)
	assert.Empty(t, data)

	out, err := DecodeProperties(flags, data)
	require.NoError(t, err)
	assert.Equal(t, "", out.ContentType)
}

func TestPropertiesTruncatedData(t *testing.T) {
	_, err := DecodeProperties(flagContentType, nil)
	require.Error(t, err)
	assert.True(t, amqp091.IsIO(err))
}

func TestPropertiesReservedFlagBit(t *testing.T) {
	// bit 0 is reserved (the never-used continuation flag); a broker that
	// sets it is sending a flags word this schema can't decode against.
	_, err := DecodeProperties(flagContentType|0x0001, nil)
	require.Error(t, err)
	assert.True(t, amqp091.IsProtocol(err))
}
