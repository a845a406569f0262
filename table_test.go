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

func TestTableRoundTrip(t *testing.T) {
	in := Table{
		{Key: "present", Value: true},
		{Key: "count", Value: int32(42)},
		{Key: "ratio", Value: float64(3.5)},
		{Key: "label", Value: "hello"},
		{Key: "raw", Value: []byte{0x01, 0x02}},
		{Key: "empty", Value: nil},
		{Key: "when", Value: Timestamp(1700000000)},
		{Key: "scaled", Value: Decimal{Scale: 2, Value: 1234}},
		// longstr carries no UTF-8 guarantee; a decode that lossily
		// sanitizes this would corrupt it into a replacement character.
		{Key: "binary", Value: string([]byte{0xFF, 0xFE, 0x00, 0x80})},
	}

	b, err := EncodeTable(in)
	require.NoError(t, err)

	out, n, err := DecodeTable(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	require.Len(t, out, len(in))

	for i, entry := range in {
		assert.Equal(t, entry.Key, out[i].Key)
		assert.Equal(t, entry.Value, out[i].Value, "entry %q", entry.Key)
	}
	v, ok := out.Get("count")
	require.True(t, ok)
	assert.Equal(t, int32(42), v)

	v, ok = out.Get("when")
	require.True(t, ok)
	assert.Equal(t, uint64Timestamp(1700000000), v)
}

func TestTableNested(t *testing.T) {
	inner := Table{{Key: "x", Value: int32(1)}}
	in := Table{
		{Key: "nested", Value: inner},
		{Key: "list", Value: []any{int32(1), "two", true}},
	}

	b, err := EncodeTable(in)
	require.NoError(t, err)

	out, n, err := DecodeTable(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	nested, ok := out.Get("nested")
	require.True(t, ok)
	nestedTable, ok := nested.(Table)
	require.True(t, ok)
	assert.Equal(t, "x", nestedTable[0].Key)
	assert.Equal(t, int32(1), nestedTable[0].Value)

	list, ok := out.Get("list")
	require.True(t, ok)
	arr, ok := list.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, int32(1), arr[0])
	assert.Equal(t, "two", arr[1])
	assert.Equal(t, true, arr[2])
}

func TestTableUnknownTag(t *testing.T) {
	// length(4) + key "k"(1+1) + unknown tag 'Z'
	raw := []byte{0, 0, 0, 3, 1, 'k', 'Z'}
	_, _, err := DecodeTable(raw)
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}

func TestTableLengthMismatch(t *testing.T) {
	// declares a body of 10 bytes but only provides a complete bool entry
	raw := []byte{0, 0, 0, 10, 1, 'k', byte(tagBool), 1}
	_, _, err := DecodeTable(raw)
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}
