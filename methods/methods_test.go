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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/amqp091"
)

// roundTrip encodes m, wraps it as a MethodFrame, decodes into a fresh
// instance obtained from the registry, and returns the decoded value for
// the caller to assert field-by-field.
func roundTrip(t *testing.T, m amqp091.Method) amqp091.Method {
	t.Helper()
	args, err := m.Encode()
	require.NoError(t, err)

	mf := &amqp091.MethodFrame{ClassID: m.ClassID(), MethodID: m.ID(), Arguments: args}
	got, ok := New(m.ClassID(), m.ID())
	require.True(t, ok, "method not registered")
	require.NoError(t, got.Decode(mf))
	return got
}

func TestConnectionStartRoundTrip(t *testing.T) {
	in := &ConnectionStart{
		VersionMajor:     0,
		VersionMinor:     9,
		ServerProperties: amqp091.Table{{Key: "product", Value: "amqp091"}},
		Mechanisms:       []byte("PLAIN AMQPLAIN"),
		Locales:          []byte("en_US"),
	}
	out := roundTrip(t, in).(*ConnectionStart)
	assert.Equal(t, in.VersionMinor, out.VersionMinor)
	assert.Equal(t, in.Mechanisms, out.Mechanisms)
	assert.Equal(t, in.Locales, out.Locales)
	v, ok := out.ServerProperties.Get("product")
	require.True(t, ok)
	assert.Equal(t, "amqp091", v)
}

func TestConnectionCloseRoundTrip(t *testing.T) {
	in := &ConnectionClose{ReplyCode: 320, ReplyText: "CONNECTION_FORCED", ClassId: 10, MethodId: 40}
	out := roundTrip(t, in).(*ConnectionClose)
	assert.Equal(t, in.ReplyCode, out.ReplyCode)
	assert.Equal(t, in.ReplyText, out.ReplyText)
	assert.Equal(t, in.ClassId, out.ClassId)
	assert.Equal(t, in.MethodId, out.MethodId)
}

func TestChannelCloseOkRoundTrip(t *testing.T) {
	in := &ChannelCloseOk{}
	out := roundTrip(t, in).(*ChannelCloseOk)
	assert.Equal(t, in, out)
}

func TestExchangeDeclareRoundTrip(t *testing.T) {
	in := &ExchangeDeclare{
		Exchange: "logs", Type: "topic", Durable: true, AutoDelete: false,
		Arguments: amqp091.Table{{Key: "x-ha-policy", Value: "all"}},
	}
	out := roundTrip(t, in).(*ExchangeDeclare)
	assert.Equal(t, in.Exchange, out.Exchange)
	assert.Equal(t, in.Type, out.Type)
	assert.True(t, out.Durable)
	assert.False(t, out.AutoDelete)
}

func TestQueueDeclareOkRoundTrip(t *testing.T) {
	in := &QueueDeclareOk{Queue: "tasks", MessageCount: 17, ConsumerCount: 2}
	out := roundTrip(t, in).(*QueueDeclareOk)
	assert.Equal(t, *in, *out)
}

func TestBasicPublishRoundTrip(t *testing.T) {
	in := &BasicPublish{Exchange: "amq.topic", RoutingKey: "orders.created", Mandatory: true, Immediate: false}
	out := roundTrip(t, in).(*BasicPublish)
	assert.Equal(t, in.Exchange, out.Exchange)
	assert.Equal(t, in.RoutingKey, out.RoutingKey)
	assert.True(t, out.Mandatory)
	assert.False(t, out.Immediate)
	assert.True(t, amqp091.CarriesContent(out.ClassID(), out.ID()))
}

func TestBasicNackRoundTrip(t *testing.T) {
	in := &BasicNack{DeliveryTag: 99, Multiple: true, Requeue: true}
	out := roundTrip(t, in).(*BasicNack)
	assert.Equal(t, *in, *out)
}

func TestTxSelectRoundTrip(t *testing.T) {
	in := &TxSelect{}
	out := roundTrip(t, in).(*TxSelect)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsMismatchedClassMethod(t *testing.T) {
	mf := &amqp091.MethodFrame{ClassID: amqp091.ClassBasic, MethodID: 999}
	m := &BasicAck{}
	err := m.Decode(mf)
	require.Error(t, err)
	assert.True(t, amqp091.IsProtocol(err))
}

func TestLookupAndNew(t *testing.T) {
	name, ok := Lookup(amqp091.ClassQueue, 10)
	require.True(t, ok)
	assert.Equal(t, "queue", name.Class)
	assert.Equal(t, "declare", name.Method)

	_, ok = Lookup(amqp091.ClassQueue, 0xFFFF)
	assert.False(t, ok)

	m, ok := New(amqp091.ClassTx, 20)
	require.True(t, ok)
	_, isTxCommit := m.(*TxCommit)
	assert.True(t, isTxCommit)
}

func TestRegistryCoversEveryClass(t *testing.T) {
	for _, classID := range []uint16{
		amqp091.ClassConnection,
		amqp091.ClassChannel,
		amqp091.ClassExchange,
		amqp091.ClassQueue,
		amqp091.ClassBasic,
		amqp091.ClassTx,
	} {
		found := false
		for id := range registry {
			if id.ClassID == classID {
				found = true
				break
			}
		}
		assert.True(t, found, "no methods registered for class %d", classID)
	}
}
