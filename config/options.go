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

// Package config holds the codec's own tunables — the things a caller
// negotiates once (Connection.Tune's frame-max) and then hands to every
// Frame decode/encode call. Adapted from packetd's common.Options /
// confengine, scoped down to what a pure codec needs.
package config

import "github.com/spf13/cast"

// Options is a loosely-typed bag of codec tunables, coerced on read the
// way common.Options does in the teacher repo.
type Options map[string]any

// NewOptions returns an Options holding only the codec's defaults.
func NewOptions() Options {
	return Options{
		"maxFrameSize": DefaultMaxFrameSize,
		"logLevel":     "warn",
	}
}

// DefaultMaxFrameSize mirrors amqp091.DefaultMaxFrameSize; kept here too
// so config has no import-cycle dependency back on the codec package.
const DefaultMaxFrameSize = 131072

func (o Options) GetInt(k string) (int, error) {
	return cast.ToIntE(o[k])
}

func (o Options) GetUint32(k string) (uint32, error) {
	return cast.ToUint32E(o[k])
}

func (o Options) GetBool(k string) (bool, error) {
	return cast.ToBoolE(o[k])
}

func (o Options) GetString(k string) (string, error) {
	return cast.ToStringE(o[k])
}

// MaxFrameSize returns the configured frame bound, falling back to
// DefaultMaxFrameSize when unset or malformed.
func (o Options) MaxFrameSize() uint32 {
	v, err := o.GetUint32("maxFrameSize")
	if err != nil || v == 0 {
		return DefaultMaxFrameSize
	}
	return v
}

// Merge sets k to v.
func (o Options) Merge(k string, v any) {
	o[k] = v
}
