// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"
)

// Env is a Source whose values come from prefixed environment variables.
//
// With the prefix "TIMEFMT", the variable TIMEFMT_LOG_LEVEL sets the key
// path log.level. Only the first underscore after the prefix separates
// the section from the key, so TIMEFMT_BATCH_MAX_LINES sets batch.max_lines.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source reading the current process environment.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the [Source] interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k, ok = strings.CutPrefix(k, src.prefix+"_")
		if !ok || k == "" {
			continue
		}

		path := strings.SplitN(strings.ToLower(k), "_", 2)
		err := store.Set(path, v)
		if err != nil {
			return err
		}
	}
	return nil
}
