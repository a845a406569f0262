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
)

// EncodedMethod is the opaque, already-encoded argument byte sequence of
// a MethodFrame. Distinct from FramePayload so a method's arguments can't
// be mistaken for a whole frame's payload (which also carries the
// class/method id prefix).
type EncodedMethod []byte

// MethodFrame is the interpretation of a METHOD frame's payload:
// class/method id followed by the schema-encoded arguments.
type MethodFrame struct {
	ClassID   uint16
	MethodID  uint16
	Arguments EncodedMethod
}

// DecodeMethodFrame requires frame.Type == FrameMethod; it reads the
// class/method id prefix and captures the remaining payload as opaque
// Arguments for the matching schema binding to decode.
func DecodeMethodFrame(frame *Frame) (*MethodFrame, error) {
	if frame.Type != FrameMethod {
		return nil, errNotMethodFrame
	}
	if len(frame.Payload) < 4 {
		return nil, ioErrorf(errShortBuffer, "method frame prefix")
	}
	return &MethodFrame{
		ClassID:   binary.BigEndian.Uint16(frame.Payload[0:2]),
		MethodID:  binary.BigEndian.Uint16(frame.Payload[2:4]),
		Arguments: EncodedMethod(frame.Payload[4:]),
	}, nil
}

// Encode serializes mf as a METHOD FramePayload: class_id(2) method_id(2)
// arguments(...).
func (mf *MethodFrame) Encode() FramePayload {
	out := make([]byte, 4+len(mf.Arguments))
	binary.BigEndian.PutUint16(out[0:2], mf.ClassID)
	binary.BigEndian.PutUint16(out[2:4], mf.MethodID)
	copy(out[4:], mf.Arguments)
	return out
}

// Validate reports a Protocol error if mf's (class_id, method_id) does
// not match the schema entry attempting to decode it, per spec §4.6.
func (mf *MethodFrame) Validate(classID, methodID uint16) error {
	if mf.ClassID != classID || mf.MethodID != methodID {
		return errClassMethodID
	}
	return nil
}

// Method is implemented by every generated per-method schema binding
// (see the methods package). Unlike the Rust original's associated
// consts, ClassID/ID are instance methods — Go has no per-type const
// dispatch through an interface.
type Method interface {
	Decode(mf *MethodFrame) error
	Encode() (EncodedMethod, error)
	Name() string
	ClassID() uint16
	ID() uint16
}

// EncodeMethodFrame builds the full MethodFrame payload for m, the Go
// equivalent of the original's Method::encode_method_frame.
func EncodeMethodFrame(m Method) (FramePayload, error) {
	args, err := m.Encode()
	if err != nil {
		return nil, err
	}
	mf := &MethodFrame{ClassID: m.ClassID(), MethodID: m.ID(), Arguments: args}
	return mf.Encode(), nil
}

// ToFrame wraps m as a complete METHOD Frame on channel, the Go
// equivalent of the original's Method::to_frame.
func ToFrame(m Method, channel uint16) (*Frame, error) {
	payload, err := EncodeMethodFrame(m)
	if err != nil {
		return nil, err
	}
	return &Frame{Type: FrameMethod, Channel: channel, Payload: payload}, nil
}
