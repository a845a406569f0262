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

const classQueue = amqp091.ClassQueue

func init() {
	register(classQueue, 10, "declare", func() amqp091.Method { return &QueueDeclare{} })
	register(classQueue, 11, "declare-ok", func() amqp091.Method { return &QueueDeclareOk{} })
	register(classQueue, 20, "bind", func() amqp091.Method { return &QueueBind{} })
	register(classQueue, 21, "bind-ok", func() amqp091.Method { return &QueueBindOk{} })
	register(classQueue, 30, "purge", func() amqp091.Method { return &QueuePurge{} })
	register(classQueue, 31, "purge-ok", func() amqp091.Method { return &QueuePurgeOk{} })
	register(classQueue, 40, "delete", func() amqp091.Method { return &QueueDelete{} })
	register(classQueue, 41, "delete-ok", func() amqp091.Method { return &QueueDeleteOk{} })
	register(classQueue, 50, "unbind", func() amqp091.Method { return &QueueUnbind{} })
	register(classQueue, 51, "unbind-ok", func() amqp091.Method { return &QueueUnbindOk{} })
}

// QueueDeclare is queue.declare (50,10): creates a queue if it doesn't
// already exist.
type QueueDeclare struct {
	Ticket     uint16 // reserved
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  amqp091.Table
}

func (m *QueueDeclare) ClassID() uint16 { return classQueue }
func (m *QueueDeclare) ID() uint16      { return 10 }
func (m *QueueDeclare) Name() string    { return "queue.declare" }

func (m *QueueDeclare) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Passive, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Durable, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Exclusive, err = r.ReadBit(); err != nil {
		return err
	}
	if m.AutoDelete, err = r.ReadBit(); err != nil {
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

func (m *QueueDeclare) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Passive); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Durable); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Exclusive); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.AutoDelete); err != nil {
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

// QueueDeclareOk is queue.declare-ok (50,11): reports the final queue
// name and its current depth.
type QueueDeclareOk struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (m *QueueDeclareOk) ClassID() uint16 { return classQueue }
func (m *QueueDeclareOk) ID() uint16      { return 11 }
func (m *QueueDeclareOk) Name() string    { return "queue.declare-ok" }

func (m *QueueDeclareOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.MessageCount, err = r.ReadLong(); err != nil {
		return err
	}
	if m.ConsumerCount, err = r.ReadLong(); err != nil {
		return err
	}
	return nil
}

func (m *QueueDeclareOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteLong(m.MessageCount); err != nil {
		return nil, err
	}
	if err := w.WriteLong(m.ConsumerCount); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueueBind is queue.bind (50,20): binds a queue to an exchange.
type QueueBind struct {
	Ticket     uint16 // reserved
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  amqp091.Table
}

func (m *QueueBind) ClassID() uint16 { return classQueue }
func (m *QueueBind) ID() uint16      { return 20 }
func (m *QueueBind) Name() string    { return "queue.bind" }

func (m *QueueBind) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortstr(); err != nil {
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

func (m *QueueBind) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
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

// QueueBindOk is queue.bind-ok (50,21). Carries no arguments.
type QueueBindOk struct{}

func (m *QueueBindOk) ClassID() uint16 { return classQueue }
func (m *QueueBindOk) ID() uint16      { return 21 }
func (m *QueueBindOk) Name() string    { return "queue.bind-ok" }

func (m *QueueBindOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *QueueBindOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// QueuePurge is queue.purge (50,30): discards all messages in a queue.
type QueuePurge struct {
	Ticket uint16 // reserved
	Queue  string
	NoWait bool
}

func (m *QueuePurge) ClassID() uint16 { return classQueue }
func (m *QueuePurge) ID() uint16      { return 30 }
func (m *QueuePurge) Name() string    { return "queue.purge" }

func (m *QueuePurge) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	m.NoWait, err = r.ReadBit()
	return err
}

func (m *QueuePurge) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoWait); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueuePurgeOk is queue.purge-ok (50,31): reports how many messages were
// discarded.
type QueuePurgeOk struct {
	MessageCount uint32
}

func (m *QueuePurgeOk) ClassID() uint16 { return classQueue }
func (m *QueuePurgeOk) ID() uint16      { return 31 }
func (m *QueuePurgeOk) Name() string    { return "queue.purge-ok" }

func (m *QueuePurgeOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.MessageCount, err = r.ReadLong()
	return err
}

func (m *QueuePurgeOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLong(m.MessageCount); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueueDelete is queue.delete (50,40): deletes a queue.
type QueueDelete struct {
	Ticket   uint16 // reserved
	Queue    string
	IfUnused bool
	IfEmpty  bool
	NoWait   bool
}

func (m *QueueDelete) ClassID() uint16 { return classQueue }
func (m *QueueDelete) ID() uint16      { return 40 }
func (m *QueueDelete) Name() string    { return "queue.delete" }

func (m *QueueDelete) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.IfUnused, err = r.ReadBit(); err != nil {
		return err
	}
	if m.IfEmpty, err = r.ReadBit(); err != nil {
		return err
	}
	if m.NoWait, err = r.ReadBit(); err != nil {
		return err
	}
	return nil
}

func (m *QueueDelete) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.IfUnused); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.IfEmpty); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoWait); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueueDeleteOk is queue.delete-ok (50,41): reports how many messages
// were discarded when the queue was deleted.
type QueueDeleteOk struct {
	MessageCount uint32
}

func (m *QueueDeleteOk) ClassID() uint16 { return classQueue }
func (m *QueueDeleteOk) ID() uint16      { return 41 }
func (m *QueueDeleteOk) Name() string    { return "queue.delete-ok" }

func (m *QueueDeleteOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.MessageCount, err = r.ReadLong()
	return err
}

func (m *QueueDeleteOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLong(m.MessageCount); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueueUnbind is queue.unbind (50,50): unbinds a queue from an exchange.
type QueueUnbind struct {
	Ticket     uint16 // reserved
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  amqp091.Table
}

func (m *QueueUnbind) ClassID() uint16 { return classQueue }
func (m *QueueUnbind) ID() uint16      { return 50 }
func (m *QueueUnbind) Name() string    { return "queue.unbind" }

func (m *QueueUnbind) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.Ticket, err = r.ReadShort(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Arguments, err = r.ReadTable(); err != nil {
		return err
	}
	return nil
}

func (m *QueueUnbind) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
		return nil, err
	}
	if err := w.WriteTable(m.Arguments); err != nil {
		return nil, err
	}
	return finish(w)
}

// QueueUnbindOk is queue.unbind-ok (50,51). Carries no arguments.
type QueueUnbindOk struct{}

func (m *QueueUnbindOk) ClassID() uint16 { return classQueue }
func (m *QueueUnbindOk) ID() uint16      { return 51 }
func (m *QueueUnbindOk) Name() string    { return "queue.unbind-ok" }

func (m *QueueUnbindOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *QueueUnbindOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}
