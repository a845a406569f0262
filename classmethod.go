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

// AMQP 0-9-1 class ids. Generalizes protocol/pamqp/classmethod.go's
// private classConnection/classChannel/... constants into the public
// surface the methods package schema bindings are keyed against.
const (
	ClassConnection = 10
	ClassChannel    = 20
	ClassExchange   = 40
	ClassQueue      = 50
	ClassBasic      = 60
	ClassTx         = 90
)

// ClassNames maps a class id to its AMQP spec name, generalizing
// protocol/pamqp/classmethod.go's classNames map to the full public
// surface.
var ClassNames = map[uint16]string{
	ClassConnection: "connection",
	ClassChannel:    "channel",
	ClassExchange:   "exchange",
	ClassQueue:      "queue",
	ClassBasic:      "basic",
	ClassTx:         "tx",
}

// ClassMethodID identifies a schema entry by (class_id, method_id).
type ClassMethodID struct {
	ClassID  uint16
	MethodID uint16
}

// carriesContent is the static table from spec §4.8: methods whose
// class/method id pair is followed by a content-header + body. It
// generalizes protocol/pamqp/classmethod.go's classMethodNeedContentHeader
// map, which covers the same four methods for the same reason (they are
// the only AMQP 0-9-1 methods that carry a message body).
var carriesContent = map[ClassMethodID]bool{
	{ClassID: ClassBasic, MethodID: 40}: true, // basic.publish
	{ClassID: ClassBasic, MethodID: 50}: true, // basic.return
	{ClassID: ClassBasic, MethodID: 60}: true, // basic.deliver
	{ClassID: ClassBasic, MethodID: 71}: true, // basic.get-ok
}

// CarriesContent reports whether the method identified by (classID,
// methodID) is followed by a content-header frame and body frames, per
// spec §4.8. Consulted by the higher-level connection/channel state
// machine, which is out of this codec's scope.
func CarriesContent(classID, methodID uint16) bool {
	return carriesContent[ClassMethodID{ClassID: classID, MethodID: methodID}]
}
