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
	"encoding/binary"
	"io"
	"math"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/packetd/amqp091/internal/bufpool"
)

// maxShortstrLen is the largest length a shortstr's single length octet
// can express.
const maxShortstrLen = math.MaxUint8

// ArgumentsReader reads the nine AMQP field types off an immutable byte
// slice, tracking a small bit-accumulator across adjacent `bit` fields.
//
// All non-bit reads reset the bit accumulator: any unread bits in a
// partially consumed packed octet are lost, matching the wire format's
// "bits only coalesce with adjacent bits" rule.
type ArgumentsReader struct {
	data []byte
	pos  int

	pendingOctet    byte
	pendingBitIndex uint8
}

// NewArgumentsReader wraps data for sequential field reads.
func NewArgumentsReader(data []byte) *ArgumentsReader {
	return &ArgumentsReader{data: data}
}

func (r *ArgumentsReader) resetBits() {
	r.pendingBitIndex = 0
}

func (r *ArgumentsReader) readBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, ioErrorf(io.ErrUnexpectedEOF, "short read: need %d bytes, have %d", n, len(r.data)-r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadOctet reads a single unsigned byte.
func (r *ArgumentsReader) ReadOctet() (uint8, error) {
	r.resetBits()
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadShort reads a big-endian uint16.
func (r *ArgumentsReader) ReadShort() (uint16, error) {
	r.resetBits()
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadLong reads a big-endian uint32.
func (r *ArgumentsReader) ReadLong() (uint32, error) {
	r.resetBits()
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadLonglong reads a big-endian uint64.
func (r *ArgumentsReader) ReadLonglong() (uint64, error) {
	r.resetBits()
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadTimestamp reads a big-endian uint64 POSIX timestamp.
func (r *ArgumentsReader) ReadTimestamp() (uint64, error) {
	return r.ReadLonglong()
}

// ReadShortstr reads a length-octet-prefixed string, conventionally UTF-8.
func (r *ArgumentsReader) ReadShortstr() (string, error) {
	r.resetBits()
	n, err := r.ReadOctet()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLongstr reads a u32-length-prefixed opaque byte sequence. AMQP
// longstr carries no UTF-8 guarantee; use LongstrString for a lossy text
// view at the caller's own risk.
func (r *ArgumentsReader) ReadLongstr() ([]byte, error) {
	r.resetBits()
	n, err := r.ReadLong()
	if err != nil {
		return nil, err
	}
	b, err := r.readBytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadTable reads a recursive field-table.
func (r *ArgumentsReader) ReadTable() (Table, error) {
	r.resetBits()
	t, n, err := decodeTable(r.data[r.pos:])
	if err != nil {
		return nil, err
	}
	r.pos += n
	return t, nil
}

// ReadBit reads a single packed bit. Bits refill the pending octet when
// pendingBitIndex is 0 or 8, then return bit 7-pendingBitIndex of that
// octet (the first logical bit is the MSB, the eighth is the LSB).
//
// Unlike the other Read* accessors, running out of bytes here is a
// Protocol error rather than an Io one: a correctly-framed argument list
// never leaves a bit group's backing octet unwritten, so finding none is
// a schema/wire mismatch, not a transport short-read.
func (r *ArgumentsReader) ReadBit() (bool, error) {
	if r.pendingBitIndex == 0 || r.pendingBitIndex == 8 {
		if r.pos >= len(r.data) {
			return false, errBitmapExhausted
		}
		r.pendingOctet = r.data[r.pos]
		r.pos++
		r.pendingBitIndex = 0
	}
	bit := (r.pendingOctet>>(7-r.pendingBitIndex))&1 == 1
	r.pendingBitIndex++
	return bit, nil
}

// LongstrString decodes a longstr's opaque bytes as best-effort UTF-8 text.
func LongstrString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// ArgumentsWriter writes the nine AMQP field types to a growable buffer,
// mirroring ArgumentsReader's bit-accumulator. Any non-bit write flushes
// pending bits first; Finish performs the final flush.
type ArgumentsWriter struct {
	buf *bufferWriter

	pendingOctet    byte
	pendingBitIndex uint8
}

// NewArgumentsWriter returns a writer backed by a pooled buffer.
func NewArgumentsWriter() *ArgumentsWriter {
	return &ArgumentsWriter{buf: newBufferWriter()}
}

// flushBits appends the pending octet iff any bits were written, then
// resets the accumulator.
func (w *ArgumentsWriter) flushBits() error {
	if w.pendingBitIndex == 0 {
		return nil
	}
	if err := w.buf.WriteByte(w.pendingOctet); err != nil {
		return ioErrorf(err, "flush bits")
	}
	w.pendingOctet = 0
	w.pendingBitIndex = 0
	return nil
}

// WriteOctet writes a single unsigned byte.
func (w *ArgumentsWriter) WriteOctet(v uint8) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	return w.buf.WriteByte(v)
}

// WriteShort writes a big-endian uint16.
func (w *ArgumentsWriter) WriteShort(v uint16) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return w.buf.Write(b[:])
}

// WriteLong writes a big-endian uint32.
func (w *ArgumentsWriter) WriteLong(v uint32) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.buf.Write(b[:])
}

// WriteLonglong writes a big-endian uint64.
func (w *ArgumentsWriter) WriteLonglong(v uint64) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return w.buf.Write(b[:])
}

// WriteTimestamp writes a big-endian uint64 POSIX timestamp.
func (w *ArgumentsWriter) WriteTimestamp(v uint64) error {
	return w.WriteLonglong(v)
}

// WriteShortstr writes a length-octet-prefixed string. Fails Protocol if
// len(v) > 255.
func (w *ArgumentsWriter) WriteShortstr(v string) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	if len(v) > maxShortstrLen {
		return errShortstrOverflow
	}
	if err := w.buf.WriteByte(byte(len(v))); err != nil {
		return err
	}
	return w.buf.WriteString(v)
}

// WriteLongstr writes a u32-length-prefixed opaque byte sequence.
func (w *ArgumentsWriter) WriteLongstr(v []byte) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(len(v)))
	if err := w.buf.Write(b[:]); err != nil {
		return err
	}
	return w.buf.Write(v)
}

// WriteTable writes a recursive field-table: a u32-be length prefix,
// then its entries.
func (w *ArgumentsWriter) WriteTable(t Table) error {
	if err := w.flushBits(); err != nil {
		return err
	}
	return encodeTable(w.buf, t)
}

// WriteBit sets bit 7-pendingBitIndex of the pending octet and flushes
// once the eighth bit lands. Additional bits after the eighth start a
// fresh octet at bit 7.
func (w *ArgumentsWriter) WriteBit(v bool) error {
	if v {
		w.pendingOctet |= 1 << (7 - w.pendingBitIndex)
	}
	w.pendingBitIndex++
	if w.pendingBitIndex == 8 {
		return w.flushBits()
	}
	return nil
}

// Finish flushes any pending bits and returns the accumulated bytes as an
// EncodedMethod-compatible slice. The writer must not be reused afterward.
func (w *ArgumentsWriter) Finish() ([]byte, error) {
	if err := w.flushBits(); err != nil {
		return nil, err
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	w.buf.release()
	return out, nil
}

// bufferWriter is a tiny pooled-buffer adapter so ArgumentsWriter and
// the table codec share one buffer-growth strategy instead of each
// hand-rolling append(...). Frame.Encode does not use it.
type bufferWriter struct {
	b *bytebufferpool.ByteBuffer
}

func newBufferWriter() *bufferWriter {
	return &bufferWriter{b: bufpool.Acquire()}
}

func (w *bufferWriter) WriteByte(c byte) error {
	return w.b.WriteByte(c)
}

func (w *bufferWriter) Write(p []byte) error {
	_, err := w.b.Write(p)
	return err
}

func (w *bufferWriter) WriteString(s string) error {
	_, err := w.b.WriteString(s)
	return err
}

func (w *bufferWriter) Len() int      { return w.b.Len() }
func (w *bufferWriter) Bytes() []byte { return w.b.Bytes() }
func (w *bufferWriter) release()      { bufpool.Release(w.b) }
