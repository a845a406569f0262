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

const classBasic = amqp091.ClassBasic

func init() {
	register(classBasic, 10, "qos", func() amqp091.Method { return &BasicQos{} })
	register(classBasic, 11, "qos-ok", func() amqp091.Method { return &BasicQosOk{} })
	register(classBasic, 20, "consume", func() amqp091.Method { return &BasicConsume{} })
	register(classBasic, 21, "consume-ok", func() amqp091.Method { return &BasicConsumeOk{} })
	register(classBasic, 30, "cancel", func() amqp091.Method { return &BasicCancel{} })
	register(classBasic, 31, "cancel-ok", func() amqp091.Method { return &BasicCancelOk{} })
	register(classBasic, 40, "publish", func() amqp091.Method { return &BasicPublish{} })
	register(classBasic, 50, "return", func() amqp091.Method { return &BasicReturn{} })
	register(classBasic, 60, "deliver", func() amqp091.Method { return &BasicDeliver{} })
	register(classBasic, 70, "get", func() amqp091.Method { return &BasicGet{} })
	register(classBasic, 71, "get-ok", func() amqp091.Method { return &BasicGetOk{} })
	register(classBasic, 72, "get-empty", func() amqp091.Method { return &BasicGetEmpty{} })
	register(classBasic, 80, "ack", func() amqp091.Method { return &BasicAck{} })
	register(classBasic, 90, "reject", func() amqp091.Method { return &BasicReject{} })
	register(classBasic, 110, "recover", func() amqp091.Method { return &BasicRecover{} })
	register(classBasic, 111, "recover-ok", func() amqp091.Method { return &BasicRecoverOk{} })
	register(classBasic, 120, "nack", func() amqp091.Method { return &BasicNack{} })
}

// BasicQos is basic.qos (60,10): sets prefetch limits for a channel or
// consumer.
type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (m *BasicQos) ClassID() uint16 { return classBasic }
func (m *BasicQos) ID() uint16      { return 10 }
func (m *BasicQos) Name() string    { return "basic.qos" }

func (m *BasicQos) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.PrefetchSize, err = r.ReadLong(); err != nil {
		return err
	}
	if m.PrefetchCount, err = r.ReadShort(); err != nil {
		return err
	}
	m.Global, err = r.ReadBit()
	return err
}

func (m *BasicQos) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLong(m.PrefetchSize); err != nil {
		return nil, err
	}
	if err := w.WriteShort(m.PrefetchCount); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Global); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicQosOk is basic.qos-ok (60,11). Carries no arguments.
type BasicQosOk struct{}

func (m *BasicQosOk) ClassID() uint16 { return classBasic }
func (m *BasicQosOk) ID() uint16      { return 11 }
func (m *BasicQosOk) Name() string    { return "basic.qos-ok" }

func (m *BasicQosOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *BasicQosOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// BasicConsume is basic.consume (60,20): starts a consumer on a queue.
type BasicConsume struct {
	Ticket      uint16 // reserved
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   amqp091.Table
}

func (m *BasicConsume) ClassID() uint16 { return classBasic }
func (m *BasicConsume) ID() uint16      { return 20 }
func (m *BasicConsume) Name() string    { return "basic.consume" }

func (m *BasicConsume) Decode(mf *amqp091.MethodFrame) error {
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
	if m.ConsumerTag, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.NoLocal, err = r.ReadBit(); err != nil {
		return err
	}
	if m.NoAck, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Exclusive, err = r.ReadBit(); err != nil {
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

func (m *BasicConsume) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.ConsumerTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoLocal); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoAck); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Exclusive); err != nil {
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

// BasicConsumeOk is basic.consume-ok (60,21): confirms the consumer tag
// in use.
type BasicConsumeOk struct {
	ConsumerTag string
}

func (m *BasicConsumeOk) ClassID() uint16 { return classBasic }
func (m *BasicConsumeOk) ID() uint16      { return 21 }
func (m *BasicConsumeOk) Name() string    { return "basic.consume-ok" }

func (m *BasicConsumeOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.ConsumerTag, err = r.ReadShortstr()
	return err
}

func (m *BasicConsumeOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.ConsumerTag); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicCancel is basic.cancel (60,30): ends a consumer.
type BasicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (m *BasicCancel) ClassID() uint16 { return classBasic }
func (m *BasicCancel) ID() uint16      { return 30 }
func (m *BasicCancel) Name() string    { return "basic.cancel" }

func (m *BasicCancel) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ConsumerTag, err = r.ReadShortstr(); err != nil {
		return err
	}
	m.NoWait, err = r.ReadBit()
	return err
}

func (m *BasicCancel) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.ConsumerTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoWait); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicCancelOk is basic.cancel-ok (60,31): confirms a consumer ended.
type BasicCancelOk struct {
	ConsumerTag string
}

func (m *BasicCancelOk) ClassID() uint16 { return classBasic }
func (m *BasicCancelOk) ID() uint16      { return 31 }
func (m *BasicCancelOk) Name() string    { return "basic.cancel-ok" }

func (m *BasicCancelOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.ConsumerTag, err = r.ReadShortstr()
	return err
}

func (m *BasicCancelOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.ConsumerTag); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicPublish is basic.publish (60,40): publishes a message. Always
// carries content, per amqp091.CarriesContent.
type BasicPublish struct {
	Ticket     uint16 // reserved
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (m *BasicPublish) ClassID() uint16 { return classBasic }
func (m *BasicPublish) ID() uint16      { return 40 }
func (m *BasicPublish) Name() string    { return "basic.publish" }

func (m *BasicPublish) Decode(mf *amqp091.MethodFrame) error {
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
	if m.RoutingKey, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.Mandatory, err = r.ReadBit(); err != nil {
		return err
	}
	m.Immediate, err = r.ReadBit()
	return err
}

func (m *BasicPublish) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Mandatory); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Immediate); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicReturn is basic.return (60,50): bounces an undeliverable message
// back to the publisher. Carries content.
type BasicReturn struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (m *BasicReturn) ClassID() uint16 { return classBasic }
func (m *BasicReturn) ID() uint16      { return 50 }
func (m *BasicReturn) Name() string    { return "basic.return" }

func (m *BasicReturn) Decode(mf *amqp091.MethodFrame) error {
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
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	m.RoutingKey, err = r.ReadShortstr()
	return err
}

func (m *BasicReturn) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.ReplyCode); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.ReplyText); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicDeliver is basic.deliver (60,60): delivers a message to a
// consumer. Carries content.
type BasicDeliver struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (m *BasicDeliver) ClassID() uint16 { return classBasic }
func (m *BasicDeliver) ID() uint16      { return 60 }
func (m *BasicDeliver) Name() string    { return "basic.deliver" }

func (m *BasicDeliver) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.ConsumerTag, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadLonglong(); err != nil {
		return err
	}
	if m.Redelivered, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	m.RoutingKey, err = r.ReadShortstr()
	return err
}

func (m *BasicDeliver) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.ConsumerTag); err != nil {
		return nil, err
	}
	if err := w.WriteLonglong(m.DeliveryTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Redelivered); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicGet is basic.get (60,70): polls a queue for a single message.
type BasicGet struct {
	Ticket uint16 // reserved
	Queue  string
	NoAck  bool
}

func (m *BasicGet) ClassID() uint16 { return classBasic }
func (m *BasicGet) ID() uint16      { return 70 }
func (m *BasicGet) Name() string    { return "basic.get" }

func (m *BasicGet) Decode(mf *amqp091.MethodFrame) error {
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
	m.NoAck, err = r.ReadBit()
	return err
}

func (m *BasicGet) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShort(m.Ticket); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Queue); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.NoAck); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicGetOk is basic.get-ok (60,71): a polled message. Carries content.
type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (m *BasicGetOk) ClassID() uint16 { return classBasic }
func (m *BasicGetOk) ID() uint16      { return 71 }
func (m *BasicGetOk) Name() string    { return "basic.get-ok" }

func (m *BasicGetOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadLonglong(); err != nil {
		return err
	}
	if m.Redelivered, err = r.ReadBit(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortstr(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortstr(); err != nil {
		return err
	}
	m.MessageCount, err = r.ReadLong()
	return err
}

func (m *BasicGetOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLonglong(m.DeliveryTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Redelivered); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.Exchange); err != nil {
		return nil, err
	}
	if err := w.WriteShortstr(m.RoutingKey); err != nil {
		return nil, err
	}
	if err := w.WriteLong(m.MessageCount); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicGetEmpty is basic.get-empty (60,72): reports that basic.get found
// no message waiting.
type BasicGetEmpty struct {
	ClusterId string // reserved
}

func (m *BasicGetEmpty) ClassID() uint16 { return classBasic }
func (m *BasicGetEmpty) ID() uint16      { return 72 }
func (m *BasicGetEmpty) Name() string    { return "basic.get-empty" }

func (m *BasicGetEmpty) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.ClusterId, err = r.ReadShortstr()
	return err
}

func (m *BasicGetEmpty) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.ClusterId); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicAck is basic.ack (60,80): acknowledges one or more delivered
// messages.
type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (m *BasicAck) ClassID() uint16 { return classBasic }
func (m *BasicAck) ID() uint16      { return 80 }
func (m *BasicAck) Name() string    { return "basic.ack" }

func (m *BasicAck) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadLonglong(); err != nil {
		return err
	}
	m.Multiple, err = r.ReadBit()
	return err
}

func (m *BasicAck) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLonglong(m.DeliveryTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Multiple); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicReject is basic.reject (60,90): rejects a single delivered
// message.
type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (m *BasicReject) ClassID() uint16 { return classBasic }
func (m *BasicReject) ID() uint16      { return 90 }
func (m *BasicReject) Name() string    { return "basic.reject" }

func (m *BasicReject) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadLonglong(); err != nil {
		return err
	}
	m.Requeue, err = r.ReadBit()
	return err
}

func (m *BasicReject) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLonglong(m.DeliveryTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Requeue); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicRecover is basic.recover (60,110): asks the server to redeliver
// unacknowledged messages.
type BasicRecover struct {
	Requeue bool
}

func (m *BasicRecover) ClassID() uint16 { return classBasic }
func (m *BasicRecover) ID() uint16      { return 110 }
func (m *BasicRecover) Name() string    { return "basic.recover" }

func (m *BasicRecover) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.Requeue, err = r.ReadBit()
	return err
}

func (m *BasicRecover) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteBit(m.Requeue); err != nil {
		return nil, err
	}
	return finish(w)
}

// BasicRecoverOk is basic.recover-ok (60,111). Carries no arguments.
type BasicRecoverOk struct{}

func (m *BasicRecoverOk) ClassID() uint16 { return classBasic }
func (m *BasicRecoverOk) ID() uint16      { return 111 }
func (m *BasicRecoverOk) Name() string    { return "basic.recover-ok" }

func (m *BasicRecoverOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *BasicRecoverOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// BasicNack is basic.nack (60,120): the RabbitMQ extension negative
// acknowledgement, rejecting one or more delivered messages at once.
type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (m *BasicNack) ClassID() uint16 { return classBasic }
func (m *BasicNack) ID() uint16      { return 120 }
func (m *BasicNack) Name() string    { return "basic.nack" }

func (m *BasicNack) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadLonglong(); err != nil {
		return err
	}
	if m.Multiple, err = r.ReadBit(); err != nil {
		return err
	}
	m.Requeue, err = r.ReadBit()
	return err
}

func (m *BasicNack) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLonglong(m.DeliveryTag); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Multiple); err != nil {
		return nil, err
	}
	if err := w.WriteBit(m.Requeue); err != nil {
		return nil, err
	}
	return finish(w)
}
