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

// Package bufpool pools *bytebufferpool.ByteBuffer instances so repeated
// ArgumentsWriter and field-table encode calls don't allocate a fresh
// backing array every time. Mirrors the Acquire/Release shape protocol/pamqp/decoder.go
// uses for its own read buffer.
package bufpool

import "github.com/valyala/bytebufferpool"

var pool bytebufferpool.Pool

// Acquire returns a reset, ready-to-write buffer from the pool.
func Acquire() *bytebufferpool.ByteBuffer {
	return pool.Get()
}

// Release returns buf to the pool. Callers must not use buf afterwards.
func Release(buf *bytebufferpool.ByteBuffer) {
	pool.Put(buf)
}
