// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help string generation.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-simplecli/internal/argument"
	"github.com/DavidGamba/go-simplecli/text"
)

// Padding - spaces before every entry in the option list.
var Padding = 4

// Usage - Returns the single line usage string.
// Arguments are rendered in declaration order.
func Usage(programName string, arguments []*argument.Argument) string {
	units := []string{text.HelpUsagePrefix + " " + programName}
	for _, a := range arguments {
		units = append(units, a.Synopsis())
	}
	return strings.Join(units, " ")
}

// OptionList - Return a formatted list of arguments and their descriptions.
// Obligatory arguments are listed first, each group keeps declaration order.
func OptionList(arguments []*argument.Argument) string {
	requiredArguments := []*argument.Argument{}
	normalArguments := []*argument.Argument{}
	factor := 0
	for _, a := range arguments {
		if l := len(a.Spelling()); l > factor {
			factor = l
		}
		if a.Obligatory() {
			requiredArguments = append(requiredArguments, a)
		} else {
			normalArguments = append(normalArguments, a)
		}
	}

	indent := strings.Repeat(" ", Padding)
	entry := func(a *argument.Argument) string {
		details := []string{}
		if a.Description() != "" {
			continuation := "\n" + indent + strings.Repeat(" ", factor) + indent
			details = append(details, strings.ReplaceAll(a.Description(), "\n", continuation))
		}
		if v, ok := a.DefaultValue(); ok && a.Kind() == argument.KeyAndValue {
			details = append(details, fmt.Sprintf(text.HelpDefaultValue, strconv.Quote(v)))
		}
		if len(details) == 0 {
			return indent + a.Spelling() + "\n"
		}
		return indent + pad(a.Spelling(), factor) + indent + strings.Join(details, " ") + "\n"
	}

	sections := []string{}
	if len(requiredArguments) > 0 {
		out := text.HelpRequiredOptionsHeader + ":\n"
		for _, a := range requiredArguments {
			out += entry(a)
		}
		sections = append(sections, out)
	}
	if len(normalArguments) > 0 {
		out := text.HelpOptionsHeader + ":\n"
		for _, a := range normalArguments {
			out += entry(a)
		}
		sections = append(sections, out)
	}
	return strings.Join(sections, "\n")
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
