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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, uint32(DefaultMaxFrameSize), o.MaxFrameSize())

	s, err := o.GetString("logLevel")
	require.NoError(t, err)
	assert.Equal(t, "warn", s)
}

func TestOptionsMaxFrameSizeFallback(t *testing.T) {
	o := Options{"maxFrameSize": "not-a-number"}
	assert.Equal(t, uint32(DefaultMaxFrameSize), o.MaxFrameSize())

	o = Options{"maxFrameSize": 65536}
	assert.Equal(t, uint32(65536), o.MaxFrameSize())
}

func TestOptionsMerge(t *testing.T) {
	o := NewOptions()
	o.Merge("maxFrameSize", 4096)
	assert.Equal(t, uint32(4096), o.MaxFrameSize())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxFrameSize: 8192\nlogLevel: debug\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	opt, err := f.Options()
	require.NoError(t, err)
	assert.Equal(t, uint32(8192), opt.MaxFrameSize())

	s, err := opt.GetString("logLevel")
	require.NoError(t, err)
	assert.Equal(t, "debug", s)
}
