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

package analyzer

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned for configuration files with unknown keys or values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// fileConfig is the layout of a configuration file.
type fileConfig struct {
	Generated     bool  `toml:"generated"`
	SuggestFixes  bool  `toml:"suggest-fixes"`
	SizeThreshold int64 `toml:"size-threshold"`
	Concurrency   int64 `toml:"concurrency"`
}

// LoadConfig reads the TOML configuration file at path and returns the options set in it.
//
// Example:
//
//	generated = false
//	suggest-fixes = true
//	size-threshold = 128
//	concurrency = 4
func LoadConfig(path string) (Options, error) {
	var cfg fileConfig

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w: unknown key %q", path, ErrInvalidConfig, undecoded[0].String())
	}

	var opts Options

	if meta.IsDefined("generated") {
		opts = append(opts, WithGenerated(cfg.Generated))
	}

	if meta.IsDefined("suggest-fixes") {
		opts = append(opts, WithSuggestFixes(cfg.SuggestFixes))
	}

	if meta.IsDefined("size-threshold") {
		threshold, err := checkSizeThreshold(cfg.SizeThreshold)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		opts = append(opts, WithSizeThreshold(threshold))
	}

	if meta.IsDefined("concurrency") {
		concurrency, err := checkConcurrency(cfg.Concurrency)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		opts = append(opts, WithConcurrency(concurrency))
	}

	return opts, nil
}

// checkSizeThreshold validates a size threshold, which must be positive and fit into 32 bits.
func checkSizeThreshold(v int64) (int64, error) {
	threshold, err := safecast.Conv[uint32](v)
	if err != nil || threshold == 0 {
		return 0, fmt.Errorf("%w: size-threshold %d", ErrInvalidConfig, v)
	}

	return int64(threshold), nil
}

// checkConcurrency validates the number of concurrently analyzed functions.
func checkConcurrency(v int64) (int, error) {
	concurrency, err := safecast.Conv[int](v)
	if err != nil || concurrency < 1 {
		return 0, fmt.Errorf("%w: concurrency %d", ErrInvalidConfig, v)
	}

	return concurrency, nil
}
