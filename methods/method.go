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

// Package methods holds the schema bindings spec.md §4.6/§4.7 call for:
// one struct per (class_id, method_id) with Decode/Encode/Name/ClassID/ID,
// and one struct per content-class with optional, flag-bitmapped
// properties. These files are written in the shape cmd/amqpgen emits;
// testdata/amqp-rabbitmq-0.9.1.min.json holds only part of the schema
// (the connection and channel classes, basic.publish and basic.deliver),
// so most bindings here have no entry in it. The generator is a
// build-time collaborator the core codec never imports (spec.md §1),
// so nothing here depends on encoding/json or the generator at runtime.
package methods

import (
	"github.com/packetd/amqp091"
	"github.com/packetd/amqp091/log"
)

// argsReader opens an ArgumentsReader over mf.Arguments after checking
// that mf's (class_id, method_id) matches the schema entry being
// decoded — spec.md §4.6's "fails with Protocol(...) if not".
func argsReader(mf *amqp091.MethodFrame, name string, classID, methodID uint16) (*amqp091.ArgumentsReader, error) {
	if err := mf.Validate(classID, methodID); err != nil {
		return nil, err
	}
	log.Debugf("decoding %s", name)
	return amqp091.NewArgumentsReader(mf.Arguments), nil
}

// finish flushes w and returns its bytes as an EncodedMethod.
func finish(w *amqp091.ArgumentsWriter) (amqp091.EncodedMethod, error) {
	b, err := w.Finish()
	if err != nil {
		return nil, err
	}
	return amqp091.EncodedMethod(b), nil
}

// NamedClassMethod pairs a decoded (class_id, method_id) with its
// human-readable class/method names, the public equivalent of
// protocol/pamqp/classmethod.go's NamedClassMethod.
type NamedClassMethod struct {
	Class  string
	Method string
}

// Lookup returns the human-readable name for (classID, methodID), if the
// pair is part of the schema.
func Lookup(classID, methodID uint16) (NamedClassMethod, bool) {
	name, ok := methodNames[amqp091.ClassMethodID{ClassID: classID, MethodID: methodID}]
	if !ok {
		return NamedClassMethod{}, false
	}
	return NamedClassMethod{Class: amqp091.ClassNames[classID], Method: name}, true
}

// New constructs a zero-valued Method for (classID, methodID), ready to
// have Decode called on it. Used by generic dispatch (cmd/amqpdump) that
// doesn't know the concrete method type ahead of time.
func New(classID, methodID uint16) (amqp091.Method, bool) {
	ctor, ok := registry[amqp091.ClassMethodID{ClassID: classID, MethodID: methodID}]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

var registry = map[amqp091.ClassMethodID]func() amqp091.Method{}

func register(classID, methodID uint16, name string, ctor func() amqp091.Method) {
	id := amqp091.ClassMethodID{ClassID: classID, MethodID: methodID}
	registry[id] = ctor
	methodNames[id] = name
}

var methodNames = map[amqp091.ClassMethodID]string{}
