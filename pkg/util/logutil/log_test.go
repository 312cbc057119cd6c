// Copyright 2023 Marlin Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"context"
	"testing"

	"github.com/pingcap/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	cfg := NewLogConfig("info", DefaultLogFormat, log.FileLogConfig{}, false)
	require.NoError(t, InitLogger(cfg))
	require.NotNil(t, BgLogger())

	cfg = NewLogConfig("nosuchlevel", DefaultLogFormat, log.FileLogConfig{}, false)
	require.Error(t, InitLogger(cfg))
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("warn"))
	require.NoError(t, SetLevel("debug"))
	require.Error(t, SetLevel("chatty"))
	require.NoError(t, SetLevel("info"))
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, log.L(), Logger(ctx))

	ctx = WithFields(ctx, zap.String("component", "joins"))
	require.NotEqual(t, log.L(), Logger(ctx))

	// No fields means no new logger is attached.
	require.Equal(t, Logger(ctx), Logger(WithFields(ctx)))
}
