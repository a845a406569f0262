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

const classExchange = amqp091.ClassExchange

func init() {
	register(classExchange, 10, "declare", func() amqp091.Method { return &ExchangeDeclare{} })
	register(classExchange, 11, "declare-ok", func() amqp091.Method { return &ExchangeDeclareOk{} })
	register(classExchange, 20, "delete", func() amqp091.Method { return &ExchangeDelete{} })
	register(classExchange, 21, "delete-ok", func() amqp091.Method { return &ExchangeDeleteOk{} })
}

// ExchangeDeclare is exchange.declare (40,10): creates an exchange if it
// doesn't already exist.
type ExchangeDeclare struct {
	Ticket     uint16 // reserved
	Exchange   string
	Type       string
	Passive    bool
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Arguments  amqp091.Table
}

func (m *ExchangeDeclare) ClassID() uint16 { return classExchange }
func (m *ExchangeDeclare) ID() uint16      { return 10 }
func (m *ExchangeDeclare) Name() string    { return "exchange.declare" }

func (m *ExchangeDeclare) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Type, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Passive, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Durable, err = r.ReadBit(); err != nil {
		return err
	}
	if m.AutoDelete, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Internal, err = r.ReadBit(); err != nil {
		return err
	}
	if m.NoWait, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Arguments, err = r.ReadTable(); err != nil {
		return err
	}
	return nil
}

func (m *ExchangeDeclare) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Type); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Passive); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Durable); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.AutoDelete); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Internal); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoWait); err != nil {
		return nil, err
	}
	if err := w.WriteTable(m.Arguments); err != nil {
		return nil, err
	}
	return finish(w)
}

// ExchangeDeclareOk is exchange.declare-ok (40,11). Carries no arguments.
type ExchangeDeclareOk struct{}

func (m *ExchangeDeclareOk) ClassID() uint16 { return classExchange }
func (m *ExchangeDeclareOk) ID() uint16      { return 11 }
func (m *ExchangeDeclareOk) Name() string    { return "exchange.declare-ok" }

func (m *ExchangeDeclareOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *ExchangeDeclareOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// ExchangeDelete is exchange.delete (40,20): deletes an exchange.
type ExchangeDelete struct {
	Ticket   uint16 // reserved
	Exchange string
	IfUnused bool
	NoWait   bool
}

func (m *ExchangeDelete) ClassID() uint16 { return classExchange }
func (m *ExchangeDelete) ID() uint16      { return 20 }
func (m *ExchangeDelete) Name() string    { return "exchange.delete" }

func (m *ExchangeDelete) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.IfUnused, err = r.ReadBit(); err != nil {
		return err
	}
	if m.NoWait, err = r.ReadBit(); err != nil {
		return err
	}
	return nil
}

func (m *ExchangeDelete) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.IfUnused); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoWait); err != nil {
		return nil, err
	}
	return finish(w)
}

// ExchangeDeleteOk is exchange.delete-ok (40,21). Carries no arguments.
type ExchangeDeleteOk struct{}

func (m *ExchangeDeleteOk) ClassID() uint16 { return classExchange }
func (m *ExchangeDeleteOk) ID() uint16      { return 21 }
func (m *ExchangeDeleteOk) Name() string    { return "exchange.delete-ok" }

func (m *ExchangeDeleteOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *ExchangeDeleteOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}
