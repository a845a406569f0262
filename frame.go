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
)

// FrameType identifies the kind of payload a Frame carries.
type FrameType uint8

const (
	FrameMethod    FrameType = 1
	FrameHeaders   FrameType = 2
	FrameBody      FrameType = 3
	FrameHeartbeat FrameType = 8
)

var frameTypeNames = map[FrameType]string{
	FrameMethod:    "METHOD",
	FrameHeaders:   "HEADERS",
	FrameBody:      "BODY",
	FrameHeartbeat: "HEARTBEAT",
}

func (t FrameType) String() string {
	if s, ok := frameTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

func (t FrameType) valid() bool {
	_, ok := frameTypeNames[t]
	return ok
}

// frameEndMarker is the single sentinel byte every frame is terminated with.
const frameEndMarker = 0xCE

// frameHeaderLen is type(1) + channel(2) + size(4).
const frameHeaderLen = 7

// DefaultMaxFrameSize is the payload bound negotiated by Connection.Tune
// when the client and server don't otherwise agree on a smaller value.
const DefaultMaxFrameSize = 131072

// FramePayload is an opaque byte sequence produced by a method or
// content-header encoder. Keeping it a distinct type (rather than a bare
// []byte) stops a MethodFrame's arguments from being passed where a raw
// Frame payload is expected, or vice versa.
type FramePayload []byte

// Frame is the outermost envelope every AMQP wire message is carried in.
// Immutable once built — callers get a fresh Frame from Decode or build
// one directly from an encoded method/header.
type Frame struct {
	Type    FrameType
	Channel uint16
	Payload FramePayload
}

// DecodeFrame reads exactly one frame from r: a 7-byte header, the
// declared payload, and the trailing 0xCE marker. maxFrameSize bounds the
// payload size the decoder will allocate for — a declared size above it
// is rejected before any payload bytes are read, per spec §4.3/§5.
func DecodeFrame(r io.Reader, maxFrameSize uint32) (*Frame, error) {
	var header [frameHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, ioErrorf(err, "read frame header")
	}

	frameType := FrameType(header[0])
	channel := binary.BigEndian.Uint16(header[1:3])
	payloadSize := binary.BigEndian.Uint32(header[3:7])

	if maxFrameSize > 0 && payloadSize > maxFrameSize {
		return nil, errFrameTooLarge
	}
	if !frameType.valid() {
		return nil, errUnknownFrameType
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ioErrorf(err, "read frame payload")
	}

	var end [1]byte
	if _, err := io.ReadFull(r, end[:]); err != nil {
		return nil, ioErrorf(err, "read frame end marker")
	}
	if end[0] != frameEndMarker {
		return nil, errFrameEndMarker
	}

	return &Frame{Type: frameType, Channel: channel, Payload: payload}, nil
}

// Encode serializes f as header + payload + 0xCE. maxFrameSize bounds the
// payload size; 0 means unbounded.
func (f *Frame) Encode(maxFrameSize uint32) ([]byte, error) {
	if maxFrameSize > 0 && uint32(len(f.Payload)) > maxFrameSize {
		return nil, errFrameTooLarge
	}
	if !f.Type.valid() {
		return nil, errUnknownFrameType
	}

	out := make([]byte, 0, frameHeaderLen+len(f.Payload)+1)
	out = append(out, byte(f.Type))
	var chanBuf [2]byte
	binary.BigEndian.PutUint16(chanBuf[:], f.Channel)
	out = append(out, chanBuf[:]...)
	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(f.Payload)))
	out = append(out, sizeBuf[:]...)
	out = append(out, f.Payload...)
	out = append(out, frameEndMarker)
	return out, nil
}
