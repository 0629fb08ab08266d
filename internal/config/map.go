// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"
)

// Map is an in-memory configuration tree. It is both a [Source],
// applying each of its leaves, and the [Store] sources are read into.
type Map map[string]any

// Apply implements the [Source] interface.
func (m Map) Apply(store Store) error {
	return walk(m, store, nil)
}

func walk(m map[string]any, store Store, path []string) error {
	for k, v := range m {
		p := append(path[:len(path):len(path)], k)
		sub, ok := v.(map[string]any)
		if !ok {
			err := store.Set(p, v)
			if err != nil {
				return err
			}
			continue
		}
		err := walk(sub, store, p)
		if err != nil {
			return err
		}
	}
	return nil
}

// EmptyKeyError occurs when a value is set without a key.
type EmptyKeyError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e EmptyKeyError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key: %v", e.Value)
}

// UnexpectedKeyValueTypeError occurs when a key path runs through a
// value which is not itself a tree of values.
type UnexpectedKeyValueTypeError struct {
	Key string
}

// Error implements the [builtin.error] interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("expected key value to be a map[string]any: %s", e.Key)
}

// Set implements the [Store] interface.
func (m Map) Set(path []string, v any) error {
	if len(path) == 0 {
		return EmptyKeyError{Value: v}
	}

	cur := map[string]any(m)
	for i, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			next = make(map[string]any)
			cur[k] = next
		}
		sub, ok := next.(map[string]any)
		if !ok {
			return UnexpectedKeyValueTypeError{Key: strings.Join(path[:i+1], ".")}
		}
		cur = sub
	}
	cur[path[len(path)-1]] = v
	return nil
}
