// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("will join a PanicError onto the returned error", func(t *testing.T) {
		t.Run("if the panic value is a string", func(t *testing.T) {
			reformat := func() (err error) {
				defer Recover(&err)
				panic("index out of range")
			}

			err := reformat()

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "index out of range", perr.Value) {
				return
			}
			if !assert.Nil(t, perr.Unwrap()) {
				return
			}
		})

		t.Run("if the function already failed before panicking", func(t *testing.T) {
			parseErr := errors.New("bad input")
			panicErr := errors.New("nil accumulator")
			reformat := func() (err error) {
				defer Recover(&err)
				err = parseErr
				panic(panicErr)
			}

			err := reformat()
			if !assert.ErrorIs(t, err, parseErr) {
				return
			}
			if !assert.ErrorIs(t, err, panicErr) {
				return
			}
		})
	})

	t.Run("will leave the returned error alone", func(t *testing.T) {
		t.Run("if nothing panics", func(t *testing.T) {
			parseErr := errors.New("bad input")
			reformat := func() (err error) {
				defer Recover(&err)
				return parseErr
			}

			err := reformat()
			if !assert.Equal(t, parseErr, err) {
				return
			}
		})
	})
}

type failingCloser struct {
	io.Reader
	err    error
	closed int
}

func (c *failingCloser) Close() error {
	c.closed++
	return c.err
}

func TestClose(t *testing.T) {
	closeErr := errors.New("file already closed")
	readErr := errors.New("unexpected EOF")

	testCases := []struct {
		name     string
		src      any
		retErr   error
		wantIs   []error
		wantNil  bool
		closeErr bool
	}{
		{
			name:    "a reader which is not a closer",
			src:     strings.NewReader("log:\n  level: debug\n"),
			wantNil: true,
		},
		{
			name:   "a nil value",
			src:    nil,
			retErr: readErr,
			wantIs: []error{readErr},
		},
		{
			name:    "a closer which succeeds",
			src:     &failingCloser{Reader: strings.NewReader("")},
			wantNil: true,
		},
		{
			name:     "a closer which fails",
			src:      &failingCloser{Reader: strings.NewReader(""), err: closeErr},
			wantIs:   []error{closeErr},
			closeErr: true,
		},
		{
			name:     "a closer which fails after the read failed",
			src:      &failingCloser{Reader: strings.NewReader(""), err: closeErr},
			retErr:   readErr,
			wantIs:   []error{closeErr, readErr},
			closeErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run("will close "+tc.name, func(t *testing.T) {
			read := func() (err error) {
				defer Close(&err, tc.src)
				return tc.retErr
			}

			err := read()
			if tc.wantNil {
				require.NoError(t, err)
			}
			for _, want := range tc.wantIs {
				require.ErrorIs(t, err, want)
			}

			var cerr CloseError
			require.Equal(t, tc.closeErr, errors.As(err, &cerr))

			if c, ok := tc.src.(*failingCloser); ok {
				require.Equal(t, 1, c.closed)
			}
		})
	}
}
