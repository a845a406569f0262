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

	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
)

// File wraps a ucfg.Config the way packetd's confengine.Config does,
// letting a caller load codec tunables (maxFrameSize, logLevel) from a
// YAML file instead of building an Options map by hand.
type File struct {
	conf *ucfg.Config
}

// LoadFile reads and parses a YAML config file at path.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf, err := yaml.NewConfig(b)
	if err != nil {
		return nil, err
	}
	return &File{conf: conf}, nil
}

// Options unpacks the file into an Options map, filling in defaults for
// any key the file doesn't set.
func (f *File) Options() (Options, error) {
	opt := NewOptions()
	raw := map[string]any{}
	if err := f.conf.Unpack(&raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		opt.Merge(k, v)
	}
	return opt, nil
}
