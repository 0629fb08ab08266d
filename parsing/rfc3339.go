// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/timeerr"
)

var (
	rfc3339Date = description.Compound{
		description.Year{},
		description.Literal("-"),
		description.Month{},
		description.Literal("-"),
		description.Day{},
	}
	rfc3339Time = description.Compound{
		description.Hour{},
		description.Literal(":"),
		description.Minute{},
		description.Literal(":"),
		description.Second{},
	}
)

// parseRFC3339 accepts a lowercase 't' or 'z' and requires a
// four digit year without a sign.
func (p *Parsed) parseRFC3339(input string) (string, error) {
	if input != "" && (input[0] == '+' || input[0] == '-') {
		return "", timeerr.ParseComponentError{Kind: timeerr.InvalidComponent, Name: "year"}
	}
	input, err := p.parseItem(input, rfc3339Date)
	if err != nil {
		return "", err
	}
	input, ok := oneOfByte(input, 'T', 't')
	if !ok {
		return "", timeerr.ParseComponentError{Kind: timeerr.InvalidLiteral, Name: "T"}
	}
	input, err = p.parseItem(input, rfc3339Time)
	if err != nil {
		return "", err
	}
	if rest, ok := oneOfByte(input, '.'); ok {
		input, err = p.parseItem(rest, description.Subsecond{})
		if err != nil {
			return "", err
		}
	}

	if rest, ok := oneOfByte(input, 'Z', 'z'); ok {
		p.SetOffsetHour(0)
		p.SetOffsetMinute(0)
		return rest, nil
	}
	return p.parseItem(input, description.Compound{
		description.OffsetHour{SignMandatory: true},
		description.Literal(":"),
		description.OffsetMinute{},
	})
}

func oneOfByte(input string, bs ...byte) (string, bool) {
	if input == "" {
		return input, false
	}
	for _, b := range bs {
		if input[0] == b {
			return input[1:], true
		}
	}
	return input, false
}
