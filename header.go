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

import "encoding/binary"

// EncodedProperties is the opaque, already-encoded byte sequence of a
// content-header's optional properties. Distinct from FramePayload and
// EncodedMethod for the same layering reasons.
type EncodedProperties []byte

// contentHeaderPrefixLen is class(2) weight(2) body_size(8) flags(2).
const contentHeaderPrefixLen = 14

// ContentHeaderFrame is the interpretation of a HEADERS frame's payload.
// Weight is reserved and always 0. PropertiesFlags is a 16-bit bitmap,
// MSB-first: bit 15-i marks presence of the content-class's i-th
// property.
type ContentHeaderFrame struct {
	ContentClass    uint16
	Weight          uint16
	BodySize        uint64
	PropertiesFlags uint16
	Properties      EncodedProperties
}

// DecodeContentHeaderFrame reads the fixed-width prefix and captures the
// remainder as opaque Properties; it performs no validation of
// ContentClass — the properties binding validates against its own class.
func DecodeContentHeaderFrame(frame *Frame) (*ContentHeaderFrame, error) {
	p := frame.Payload
	if len(p) < contentHeaderPrefixLen {
		return nil, ioErrorf(errShortBuffer, "content header prefix")
	}
	return &ContentHeaderFrame{
		ContentClass:    binary.BigEndian.Uint16(p[0:2]),
		Weight:          binary.BigEndian.Uint16(p[2:4]),
		BodySize:        binary.BigEndian.Uint64(p[4:12]),
		PropertiesFlags: binary.BigEndian.Uint16(p[12:14]),
		Properties:      EncodedProperties(p[14:]),
	}, nil
}

// ValidatePropertiesFlags reports a Protocol error if flags sets any bit
// outside known, the bitmask of property bits a content-class's schema
// actually declares. Per spec §4.7, a content-class has at most 15
// properties (one bit reserved for a continuation flag 0-9-1 never
// uses); a flags word setting a bit outside that known set cannot be
// decoded against the schema it claims to belong to.
func ValidatePropertiesFlags(flags, known uint16) error {
	if flags&^known != 0 {
		return errPropertiesFlags
	}
	return nil
}

// Encode serializes ch as a HEADERS FramePayload.
func (ch *ContentHeaderFrame) Encode() FramePayload {
	out := make([]byte, contentHeaderPrefixLen+len(ch.Properties))
	binary.BigEndian.PutUint16(out[0:2], ch.ContentClass)
	binary.BigEndian.PutUint16(out[2:4], ch.Weight)
	binary.BigEndian.PutUint64(out[4:12], ch.BodySize)
	binary.BigEndian.PutUint16(out[12:14], ch.PropertiesFlags)
	copy(out[14:], ch.Properties)
	return out
}
