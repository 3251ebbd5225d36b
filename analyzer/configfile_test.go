// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/needlesspass/analyzer"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    map[string]string
		wantErr error
	}{
		{
			name:    "Empty",
			content: "",
			want:    map[string]string{"generated": "false", "suggest-fixes": "true", "size-threshold": "80", "concurrency": "1"},
		},
		{
			name:    "All",
			content: "generated = true\nsuggest-fixes = false\nsize-threshold = 128\nconcurrency = 4\n",
			want:    map[string]string{"generated": "true", "suggest-fixes": "false", "size-threshold": "128", "concurrency": "4"},
		},
		{
			name:    "UnknownKey",
			content: "max-lines = 5\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "NegativeThreshold",
			content: "size-threshold = -1\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "ZeroConcurrency",
			content: "concurrency = 0\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "needlesspass.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Can't write config: %v", err)
			}

			opts, err := LoadConfig(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			a := New(opts)
			for name, want := range tt.want {
				f := a.Flags.Lookup(name)
				if f == nil {
					t.Fatalf("Flag %s not registered", name)
				}

				if got := f.Value.String(); got != want {
					t.Errorf("Flag %s = %s, want %s", name, got, want)
				}
			}
		})
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "needlesspass.toml")
	if err := os.WriteFile(path, []byte("generated = = true\n"), 0o600); err != nil {
		t.Fatalf("Can't write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Got error %v, want parse error", err)
	}
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "needlesspass.toml")
	if err := os.WriteFile(path, []byte("size-threshold = 256\n"), 0o600); err != nil {
		t.Fatalf("Can't write config: %v", err)
	}

	a := New()
	if err := a.Flags.Set("config", path); err != nil {
		t.Fatalf("Can't set config flag: %v", err)
	}

	if got, want := a.Flags.Lookup("size-threshold").Value.String(), "256"; got != want {
		t.Errorf("Size threshold = %s, want %s", got, want)
	}
}
