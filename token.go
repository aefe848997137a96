// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package simplecli

import "strings"

type tokenType int

const (
	valueToken tokenType = iota
	longFlagToken
	shortFlagToken
)

func (t tokenType) String() string {
	switch t {
	case longFlagToken:
		return "long flag"
	case shortFlagToken:
		return "short flag"
	}
	return "value"
}

/*
classify - Check if the given string is a flag.
Return the token type and the flag name without the leading dashes.

`--name` is a long flag, `-n` is a short flag and anything else is a value.
There is no `--name=value` form and no bundling, `-abc` is the short flag `abc`.
The lonesome `-` and `--` are flags with an empty name.
*/
func classify(s string) (tokenType, string) {
	if strings.HasPrefix(s, "--") {
		return longFlagToken, s[2:]
	}
	if strings.HasPrefix(s, "-") {
		return shortFlagToken, s[1:]
	}
	return valueToken, s
}
