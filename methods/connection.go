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

const classConnection = amqp091.ClassConnection

func init() {
	register(classConnection, 10, "start", func() amqp091.Method { return &ConnectionStart{} })
	register(classConnection, 11, "start-ok", func() amqp091.Method { return &ConnectionStartOk{} })
	register(classConnection, 20, "secure", func() amqp091.Method { return &ConnectionSecure{} })
	register(classConnection, 21, "secure-ok", func() amqp091.Method { return &ConnectionSecureOk{} })
	register(classConnection, 30, "tune", func() amqp091.Method { return &ConnectionTune{} })
	register(classConnection, 31, "tune-ok", func() amqp091.Method { return &ConnectionTuneOk{} })
	register(classConnection, 40, "open", func() amqp091.Method { return &ConnectionOpen{} })
	register(classConnection, 41, "open-ok", func() amqp091.Method { return &ConnectionOpenOk{} })
	register(classConnection, 50, "close", func() amqp091.Method { return &ConnectionClose{} })
	register(classConnection, 51, "close-ok", func() amqp091.Method { return &ConnectionCloseOk{} })
}

// ConnectionStart is connection.start (10,10): the server's opening
// greeting — supported security mechanisms and locales.
type ConnectionStart struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties amqp091.Table
	Mechanisms       []byte
	Locales          []byte
}

func (m *ConnectionStart) ClassID() uint16 { return classConnection }
func (m *ConnectionStart) ID() uint16      { return 10 }
func (m *ConnectionStart) Name() string    { return "connection.start" }

func (m *ConnectionStart) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.VersionMajor, err = r.ReadOctet(); err != nil {
		return err
	}
	if m.VersionMinor, err = r.ReadOctet(); err != nil {
		return err
	}
	if m.ServerProperties, err = r.ReadTable(); err != nil {
		return err
	}
	if m.Mechanisms, err = r.ReadLongstr(); err != nil {
		return err
	}
	if m.Locales, err = r.ReadLongstr(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionStart) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteOctet(m.VersionMajor); err != nil {
		return nil, err
	}
	if err := w.WriteOctet(m.VersionMinor); err != nil {
		return nil, err
	}
	if err := w.WriteTable(m.ServerProperties); err != nil {
		return nil, err
	}
	if err := w.WriteLongstr(m.Mechanisms); err != nil {
		return nil, err
	}
	if err := w.WriteLongstr(m.Locales); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionStartOk is connection.start-ok (10,11): the client's chosen
// mechanism and credentials response.
type ConnectionStartOk struct {
	ClientProperties amqp091.Table
	Mechanism        string
	Response         []byte
	Locale           string
}

func (m *ConnectionStartOk) ClassID() uint16 { return classConnection }
func (m *ConnectionStartOk) ID() uint16      { return 11 }
func (m *ConnectionStartOk) Name() string    { return "connection.start-ok" }

func (m *ConnectionStartOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ClientProperties, err = r.ReadTable(); err != nil {
		return err
	}
	if m.Mechanism, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Response, err = r.ReadLongstr(); err != nil {
		return err
	}
	if m.Locale, err = r.ReadShortstr(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionStartOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteTable(m.ClientProperties); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Mechanism); err != nil {
		return nil, err
	}
	if err := w.WriteLongstr(m.Response); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Locale); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionSecure is connection.secure (10,20): an additional security
// challenge mid-handshake.
type ConnectionSecure struct {
	Challenge []byte
}

func (m *ConnectionSecure) ClassID() uint16 { return classConnection }
func (m *ConnectionSecure) ID() uint16      { return 20 }
func (m *ConnectionSecure) Name() string    { return "connection.secure" }

func (m *ConnectionSecure) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.Challenge, err = r.ReadLongstr()
	return err
}

func (m *ConnectionSecure) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLongstr(m.Challenge); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionSecureOk is connection.secure-ok (10,21): the client's
// response to a security challenge.
type ConnectionSecureOk struct {
	Response []byte
}

func (m *ConnectionSecureOk) ClassID() uint16 { return classConnection }
func (m *ConnectionSecureOk) ID() uint16      { return 21 }
func (m *ConnectionSecureOk) Name() string    { return "connection.secure-ok" }

func (m *ConnectionSecureOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.Response, err = r.ReadLongstr()
	return err
}

func (m *ConnectionSecureOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLongstr(m.Response); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionTune is connection.tune (10,30): the server's proposed
// connection limits.
type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m *ConnectionTune) ClassID() uint16 { return classConnection }
func (m *ConnectionTune) ID() uint16      { return 30 }
func (m *ConnectionTune) Name() string    { return "connection.tune" }

func (m *ConnectionTune) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ChannelMax, err = r.ReadShort(); err != nil {
		return err
	}
	if m.FrameMax, err = r.ReadLong(); err != nil {
		return err
	}
	if m.Heartbeat, err = r.ReadShort(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionTune) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.ChannelMax); err != nil {
		return nil, err
	}
	if err := w.WriteLong(m.FrameMax); err != nil {
		return nil, err
	}
	if err := w.WriteShort(m.Heartbeat); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionTuneOk is connection.tune-ok (10,31): the client's accepted
// connection limits.
type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m *ConnectionTuneOk) ClassID() uint16 { return classConnection }
func (m *ConnectionTuneOk) ID() uint16      { return 31 }
func (m *ConnectionTuneOk) Name() string    { return "connection.tune-ok" }

func (m *ConnectionTuneOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ChannelMax, err = r.ReadShort(); err != nil {
		return err
	}
	if m.FrameMax, err = r.ReadLong(); err != nil {
		return err
	}
	if m.Heartbeat, err = r.ReadShort(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionTuneOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.ChannelMax); err != nil {
		return nil, err
	}
	if err := w.WriteLong(m.FrameMax); err != nil {
		return nil, err
	}
	if err := w.WriteShort(m.Heartbeat); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionOpen is connection.open (10,40): selects a virtual host.
type ConnectionOpen struct {
	VirtualHost  string
	Capabilities string // reserved
	Insist       bool   // reserved
}

func (m *ConnectionOpen) ClassID() uint16 { return classConnection }
func (m *ConnectionOpen) ID() uint16      { return 40 }
func (m *ConnectionOpen) Name() string    { return "connection.open" }

func (m *ConnectionOpen) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.VirtualHost, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Capabilities, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Insist, err = r.ReadBit(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionOpen) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.VirtualHost); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Capabilities); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Insist); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionOpenOk is connection.open-ok (10,41): confirms the virtual
// host was opened.
type ConnectionOpenOk struct {
	KnownHosts string // reserved
}

func (m *ConnectionOpenOk) ClassID() uint16 { return classConnection }
func (m *ConnectionOpenOk) ID() uint16      { return 41 }
func (m *ConnectionOpenOk) Name() string    { return "connection.open-ok" }

func (m *ConnectionOpenOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.KnownHosts, err = r.ReadShortstr()
	return err
}

func (m *ConnectionOpenOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.KnownHosts); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionClose is connection.close (10,50): requests a clean
// connection shutdown, optionally reporting the method that triggered it.
type ConnectionClose struct {
	ReplyCode uint16
	ReplyText string
	ClassId   uint16
	MethodId  uint16
}

func (m *ConnectionClose) ClassID() uint16 { return classConnection }
func (m *ConnectionClose) ID() uint16      { return 50 }
func (m *ConnectionClose) Name() string    { return "connection.close" }

func (m *ConnectionClose) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ReplyCode, err = r.ReadShort(); err != nil {
		return err
	}
	if m.ReplyText, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.ClassId, err = r.ReadShort(); err != nil {
		return err
	}
	if m.MethodId, err = r.ReadShort(); err != nil {
		return err
	}
	return nil
}

func (m *ConnectionClose) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.ReplyCode); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.ReplyText); err != nil {
		return nil, err
	}
	if err := w.WriteShort(m.ClassId); err != nil {
		return nil, err
	}
	if err := w.WriteShort(m.MethodId); err != nil {
		return nil, err
	}
	return finish(w)
}

// ConnectionCloseOk is connection.close-ok (10,51): confirms the
// connection may now be torn down. Carries no arguments.
type ConnectionCloseOk struct{}

func (m *ConnectionCloseOk) ClassID() uint16 { return classConnection }
func (m *ConnectionCloseOk) ID() uint16      { return 51 }
func (m *ConnectionCloseOk) Name() string    { return "connection.close-ok" }

func (m *ConnectionCloseOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *ConnectionCloseOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}
