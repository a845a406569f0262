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

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel("debug"))
	assert.NotEqual(t, toZapLevel("warn"), toZapLevel("error"))
}

func TestSetLevelIsCaseInsensitive(t *testing.T) {
	SetLevel("  ERROR  ")
	assert.Equal(t, "error", stdOpt.Level)
}

func TestNewFallsBackToStdoutWithoutFilename(t *testing.T) {
	l := New(Options{Level: string(LevelInfo)})
	l.Infof("hello %s", "world")
}
