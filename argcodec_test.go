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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentsScalarRoundTrip(t *testing.T) {
	w := NewArgumentsWriter()
	require.NoError(t, w.WriteOctet(0x7F))
	require.NoError(t, w.WriteShort(0xBEEF))
	require.NoError(t, w.WriteLong(0xDEADBEEF))
	require.NoError(t, w.WriteLonglong(0x0102030405060708))
	require.NoError(t, w.WriteTimestamp(1700000000))
	require.NoError(t, w.WriteShortstr("hello"))
	require.NoError(t, w.WriteLongstr([]byte("a longer opaque blob")))
	b, err := w.Finish()
	require.NoError(t, err)

	r := NewArgumentsReader(b)
	octet, err := r.ReadOctet()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), octet)

	short, err := r.ReadShort()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), short)

	long, err := r.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), long)

	longlong, err := r.ReadLonglong()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), longlong)

	ts, err := r.ReadTimestamp()
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), ts)

	ss, err := r.ReadShortstr()
	require.NoError(t, err)
	assert.Equal(t, "hello", ss)

	ls, err := r.ReadLongstr()
	require.NoError(t, err)
	assert.Equal(t, "a longer opaque blob", string(ls))
}

func TestShortstrOverflow(t *testing.T) {
	w := NewArgumentsWriter()
	err := w.WriteShortstr(strings.Repeat("x", 256))
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}

func TestBitPacking(t *testing.T) {
	t.Run("eight adjacent bits coalesce into one octet", func(t *testing.T) {
		w := NewArgumentsWriter()
		bits := []bool{true, false, true, true, false, false, false, true}
		for _, b := range bits {
			require.NoError(t, w.WriteBit(b))
		}
		out, err := w.Finish()
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, byte(0b10110001), out[0])

		r := NewArgumentsReader(out)
		for i, want := range bits {
			got, err := r.ReadBit()
			require.NoError(t, err, "bit %d", i)
			assert.Equal(t, want, got, "bit %d", i)
		}
	})

	t.Run("a non-bit write flushes a partial octet first", func(t *testing.T) {
		w := NewArgumentsWriter()
		require.NoError(t, w.WriteBit(true))
		require.NoError(t, w.WriteBit(false))
		require.NoError(t, w.WriteOctet(0x42))
		out, err := w.Finish()
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, byte(0b10000000), out[0])
		assert.Equal(t, byte(0x42), out[1])
	})

	t.Run("a ninth bit starts a fresh octet", func(t *testing.T) {
		w := NewArgumentsWriter()
		for i := 0; i < 9; i++ {
			require.NoError(t, w.WriteBit(true))
		}
		out, err := w.Finish()
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, byte(0xFF), out[0])
		assert.Equal(t, byte(0b10000000), out[1])
	})

	t.Run("reading past declared bits does not reread a stale octet", func(t *testing.T) {
		r := NewArgumentsReader([]byte{0b11000000, 0b10000000})
		for i := 0; i < 8; i++ {
			_, err := r.ReadBit()
			require.NoError(t, err)
		}
		got, err := r.ReadBit()
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestLongstrString(t *testing.T) {
	assert.Equal(t, "hello", LongstrString([]byte("hello")))
	assert.Contains(t, LongstrString([]byte{0xFF, 0xFE}), "�")
}

func TestReadShortOnTruncatedData(t *testing.T) {
	r := NewArgumentsReader([]byte{0x01})
	_, err := r.ReadShort()
	require.Error(t, err)
	assert.True(t, IsIO(err))
}

func TestReadBitExhausted(t *testing.T) {
	r := NewArgumentsReader(nil)
	_, err := r.ReadBit()
	require.Error(t, err)
	assert.True(t, IsProtocol(err))
}
