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

import "github.com/packetd/amqp091"

// Basic content property flag bits, MSB-first within the 16-bit
// PropertiesFlags bitmap (bit 15 down to bit 2; bits 1-0 are reserved
// and always clear).
const (
	flagContentType     = 1 << 15
	flagContentEncoding = 1 << 14
	flagHeaders         = 1 << 13
	flagDeliveryMode    = 1 << 12
	flagPriority        = 1 << 11
	flagCorrelationId   = 1 << 10
	flagReplyTo         = 1 << 9
	flagExpiration      = 1 << 8
	flagMessageId       = 1 << 7
	flagTimestamp       = 1 << 6
	flagType            = 1 << 5
	flagUserId          = 1 << 4
	flagAppId           = 1 << 3
	flagClusterId       = 1 << 2

	// knownBasicPropertyFlags is the union of every bit Basic's property
	// schema declares; bits 1-0 are always reserved/unused in AMQP 0-9-1.
	knownBasicPropertyFlags = flagContentType | flagContentEncoding | flagHeaders | flagDeliveryMode |
		flagPriority | flagCorrelationId | flagReplyTo | flagExpiration | flagMessageId | flagTimestamp |
		flagType | flagUserId | flagAppId | flagClusterId
)

// BasicProperties is the basic content-class's property set (spec.md
// §4.7). A field is present on the wire iff its flag bit is set; the
// zero value of every field doubles as "absent" so callers can build one
// with a struct literal instead of tracking flags by hand.
type BasicProperties struct {
	ContentType     string
	ContentEncoding string
	Headers         amqp091.Table
	DeliveryMode    uint8
	Priority        uint8
	CorrelationId   string
	ReplyTo         string
	Expiration      string
	MessageId       string
	Timestamp       uint64
	Type            string
	UserId          string
	AppId           string
	ClusterId       string

	// present records which fields were actually set on the wire, so a
	// decoded zero value (e.g. Priority == 0) can be told apart from an
	// absent one after DecodeProperties.
	present uint16
}

// Has reports whether flag bit was set in the flags word p was decoded
// from. It is always false for a BasicProperties built directly rather
// than returned by DecodeProperties.
func (p *BasicProperties) Has(flag uint16) bool {
	return p.present&flag != 0
}

// EncodeProperties serializes p into the content-header's flags bitmap
// and opaque properties bytes. A field contributes its flag bit and
// value iff it is non-zero (non-empty string, non-zero integer, non-nil
// table); a zero-valued field is never encoded, and the bitmap recorded
// by DecodeProperties (see Has) is not consulted.
func EncodeProperties(p *BasicProperties) (uint16, amqp091.EncodedProperties, error) {
	w := amqp091.NewArgumentsWriter()
	var flags uint16

	if p.ContentType != "" {
		flags |= flagContentType
		if err := w.WriteShortstr(p.ContentType); err != nil {
			return 0, nil, err
		}
	}
	if p.ContentEncoding != "" {
		flags |= flagContentEncoding
		if err := w.WriteShortstr(p.ContentEncoding); err != nil {
			return 0, nil, err
		}
	}
	if p.Headers != nil {
		flags |= flagHeaders
		if err := w.WriteTable(p.Headers); err != nil {
			return 0, nil, err
		}
	}
	if p.DeliveryMode != 0 {
		flags |= flagDeliveryMode
		if err := w.WriteOctet(p.DeliveryMode); err != nil {
			return 0, nil, err
		}
	}
	if p.Priority != 0 {
		flags |= flagPriority
		if err := w.WriteOctet(p.Priority); err != nil {
			return 0, nil, err
		}
	}
	if p.CorrelationId != "" {
		flags |= flagCorrelationId
		if err := w.WriteShortstr(p.CorrelationId); err != nil {
			return 0, nil, err
		}
	}
	if p.ReplyTo != "" {
		flags |= flagReplyTo
		if err := w.WriteShortstr(p.ReplyTo); err != nil {
			return 0, nil, err
		}
	}
	if p.Expiration != "" {
		flags |= flagExpiration
		if err := w.WriteShortstr(p.Expiration); err != nil {
			return 0, nil, err
		}
	}
	if p.MessageId != "" {
		flags |= flagMessageId
		if err := w.WriteShortstr(p.MessageId); err != nil {
			return 0, nil, err
		}
	}
	if p.Timestamp != 0 {
		flags |= flagTimestamp
		if err := w.WriteTimestamp(p.Timestamp); err != nil {
			return 0, nil, err
		}
	}
	if p.Type != "" {
		flags |= flagType
		if err := w.WriteShortstr(p.Type); err != nil {
			return 0, nil, err
		}
	}
	if p.UserId != "" {
		flags |= flagUserId
		if err := w.WriteShortstr(p.UserId); err != nil {
			return 0, nil, err
		}
	}
	if p.AppId != "" {
		flags |= flagAppId
		if err := w.WriteShortstr(p.AppId); err != nil {
			return 0, nil, err
		}
	}
	if p.ClusterId != "" {
		flags |= flagClusterId
		if err := w.WriteShortstr(p.ClusterId); err != nil {
			return 0, nil, err
		}
	}

	b, err := w.Finish()
	if err != nil {
		return 0, nil, err
	}
	return flags, amqp091.EncodedProperties(b), nil
}

// DecodeProperties reads the properties present according to flags out
// of data, in declaration order, per spec.md §4.7.
func DecodeProperties(flags uint16, data amqp091.EncodedProperties) (*BasicProperties, error) {
	if err := amqp091.ValidatePropertiesFlags(flags, knownBasicPropertyFlags); err != nil {
		return nil, err
	}

	r := amqp091.NewArgumentsReader([]byte(data))
	p := &BasicProperties{present: flags}
	var err error

	if flags&flagContentType != 0 {
		if p.ContentType, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagContentEncoding != 0 {
		if p.ContentEncoding, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagHeaders != 0 {
		if p.Headers, err = r.ReadTable(); err != nil {
			return nil, err
		}
	}
	if flags&flagDeliveryMode != 0 {
		if p.DeliveryMode, err = r.ReadOctet(); err != nil {
			return nil, err
		}
	}
	if flags&flagPriority != 0 {
		if p.Priority, err = r.ReadOctet(); err != nil {
			return nil, err
		}
	}
	if flags&flagCorrelationId != 0 {
		if p.CorrelationId, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagReplyTo != 0 {
		if p.ReplyTo, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagExpiration != 0 {
		if p.Expiration, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagMessageId != 0 {
		if p.MessageId, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagTimestamp != 0 {
		if p.Timestamp, err = r.ReadTimestamp(); err != nil {
			return nil, err
		}
	}
	if flags&flagType != 0 {
		if p.Type, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagUserId != 0 {
		if p.UserId, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagAppId != 0 {
		if p.AppId, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}
	if flags&flagClusterId != 0 {
		if p.ClusterId, err = r.ReadShortstr(); err != nil {
			return nil, err
		}
	}

	return p, nil
}
