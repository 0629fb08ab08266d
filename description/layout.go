// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package description

// Layout is a compiled format description which remembers its source text.
// It implements [encoding.TextUnmarshaler] so descriptions can be decoded
// directly from configuration.
type Layout struct {
	text  string
	items []Item
}

// NewLayout compiles s into a Layout.
func NewLayout(s string) (Layout, error) {
	items, err := Compile(s)
	if err != nil {
		return Layout{}, err
	}
	return Layout{text: s, items: items}, nil
}

// Items returns the compiled items.
func (l Layout) Items() []Item {
	return l.items
}

// String returns the source text l was compiled from.
func (l Layout) String() string {
	return l.text
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.text), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (l *Layout) UnmarshalText(b []byte) error {
	layout, err := NewLayout(string(b))
	if err != nil {
		return err
	}
	*l = layout
	return nil
}
