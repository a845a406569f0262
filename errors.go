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

// Package amqp091 implements the wire-protocol codec for AMQP 0-9-1: frame
// framing, the typed argument (de)serialization engine and the method /
// content-header schema bindings. It is a pure in-memory codec — no
// transport, no connection state machine, no heartbeat scheduling.
package amqp091

import (
	"fmt"

	"github.com/pkg/errors"
)

// kind distinguishes the two error taxonomies the codec can surface.
type kind uint8

const (
	kindProtocol kind = iota
	kindIO
)

// codecError carries a protocol or I/O failure. For I/O failures the
// underlying error is wrapped with a stack trace courtesy of
// github.com/pkg/errors, the same wrapping style protocol/pamqp/errorcode.go
// uses for its own sentinel errors; protocol errors wrap nothing.
type codecError struct {
	kind kind
	msg  string
	err  error
}

func (e *codecError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("amqp091: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("amqp091: %s", e.msg)
}

func (e *codecError) Unwrap() error { return e.err }

// protocolErrorf builds a Protocol-kind error: any violation of the wire
// format (bad end marker, unknown tag, id mismatch, flags exhausted, ...).
func protocolErrorf(format string, args ...any) error {
	return &codecError{kind: kindProtocol, msg: fmt.Sprintf(format, args...)}
}

// ioErrorf wraps an underlying byte-stream failure (short read/write,
// closed stream) as an IO-kind error.
func ioErrorf(err error, format string, args ...any) error {
	return &codecError{kind: kindIO, msg: fmt.Sprintf(format, args...), err: errors.WithStack(err)}
}

// IsProtocol reports whether err (or any error it wraps) is a Protocol
// error — a wire-format violation the caller must treat as fatal to the
// connection (AMQP reply-code 505/502, per spec §7).
func IsProtocol(err error) bool {
	var ce *codecError
	return errors.As(err, &ce) && ce.kind == kindProtocol
}

// IsIO reports whether err (or any error it wraps) is an IO error — a
// byte-stream failure the caller should treat as transport teardown.
func IsIO(err error) bool {
	var ce *codecError
	return errors.As(err, &ce) && ce.kind == kindIO
}

var (
	errFrameEndMarker   = protocolErrorf("frame end marker")
	errUnknownFrameType = protocolErrorf("unknown frame type")
	errFrameTooLarge    = protocolErrorf("frame too large")
	errNotMethodFrame   = protocolErrorf("not a method frame")
	errShortstrOverflow = protocolErrorf("shortstr overflow")
	errUnknownTableTag  = protocolErrorf("unknown table tag")
	errTableLenMismatch = protocolErrorf("table length mismatch")
	errBitmapExhausted  = protocolErrorf("bit field has no backing octet")
	errPropertiesFlags  = protocolErrorf("properties flags exhausted")
	errClassMethodID    = protocolErrorf("unexpected class/method id")
)
