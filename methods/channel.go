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

const classChannel = amqp091.ClassChannel

func init() {
	register(classChannel, 10, "open", func() amqp091.Method { return &ChannelOpen{} })
	register(classChannel, 11, "open-ok", func() amqp091.Method { return &ChannelOpenOk{} })
	register(classChannel, 20, "flow", func() amqp091.Method { return &ChannelFlow{} })
	register(classChannel, 21, "flow-ok", func() amqp091.Method { return &ChannelFlowOk{} })
	register(classChannel, 40, "close", func() amqp091.Method { return &ChannelClose{} })
	register(classChannel, 41, "close-ok", func() amqp091.Method { return &ChannelCloseOk{} })
}

// ChannelOpen is channel.open (20,10): opens a channel for use.
type ChannelOpen struct {
	OutOfBand string // reserved
}

func (m *ChannelOpen) ClassID() uint16 { return classChannel }
func (m *ChannelOpen) ID() uint16      { return 10 }
func (m *ChannelOpen) Name() string    { return "channel.open" }

func (m *ChannelOpen) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.OutOfBand, err = r.ReadShortstr()
	return err
}

func (m *ChannelOpen) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteShortstr(m.OutOfBand); err != nil {
		return nil, err
	}
	return finish(w)
}

// ChannelOpenOk is channel.open-ok (20,11): confirms the channel is open.
type ChannelOpenOk struct {
	ChannelId []byte // reserved, longstr
}

func (m *ChannelOpenOk) ClassID() uint16 { return classChannel }
func (m *ChannelOpenOk) ID() uint16      { return 11 }
func (m *ChannelOpenOk) Name() string    { return "channel.open-ok" }

func (m *ChannelOpenOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.ChannelId, err = r.ReadLongstr()
	return err
}

func (m *ChannelOpenOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteLongstr(m.ChannelId); err != nil {
		return nil, err
	}
	return finish(w)
}

// ChannelFlow is channel.flow (20,20): asks the peer to start or stop
// sending content frames.
type ChannelFlow struct {
	Active bool
}

func (m *ChannelFlow) ClassID() uint16 { return classChannel }
func (m *ChannelFlow) ID() uint16      { return 20 }
func (m *ChannelFlow) Name() string    { return "channel.flow" }

func (m *ChannelFlow) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.Active, err = r.ReadBit()
	return err
}

func (m *ChannelFlow) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteBit(m.Active); err != nil {
		return nil, err
	}
	return finish(w)
}

// ChannelFlowOk is channel.flow-ok (20,21): confirms a flow request took
// effect.
type ChannelFlowOk struct {
	Active bool
}

func (m *ChannelFlowOk) ClassID() uint16 { return classChannel }
func (m *ChannelFlowOk) ID() uint16      { return 21 }
func (m *ChannelFlowOk) Name() string    { return "channel.flow-ok" }

func (m *ChannelFlowOk) Decode(mf *amqp091.MethodFrame) error {
	r, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	if err != nil {
		return err
	}
	m.Active, err = r.ReadBit()
	return err
}

func (m *ChannelFlowOk) Encode() (amqp091.EncodedMethod, error) {
	w := amqp091.NewArgumentsWriter()
	if err := w.WriteBit(m.Active); err != nil {
		return nil, err
	}
	return finish(w)
}

// ChannelClose is channel.close (20,40): requests a clean channel
// shutdown, optionally reporting the method that triggered it.
type ChannelClose struct {
	ReplyCode uint16
	ReplyText string
	ClassId   uint16
	MethodId  uint16
}

func (m *ChannelClose) ClassID() uint16 { return classChannel }
func (m *ChannelClose) ID() uint16      { return 40 }
func (m *ChannelClose) Name() string    { return "channel.close" }

func (m *ChannelClose) Decode(mf *amqp091.MethodFrame) error {
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

func (m *ChannelClose) Encode() (amqp091.EncodedMethod, error) {
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

// ChannelCloseOk is channel.close-ok (20,41): confirms the channel may
// now be torn down. Carries no arguments.
type ChannelCloseOk struct{}

func (m *ChannelCloseOk) ClassID() uint16 { return classChannel }
func (m *ChannelCloseOk) ID() uint16      { return 41 }
func (m *ChannelCloseOk) Name() string    { return "channel.close-ok" }

func (m *ChannelCloseOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *ChannelCloseOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}
