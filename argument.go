// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package simplecli

import (
	"github.com/DavidGamba/go-simplecli/internal/argument"
)

// Argument - Declaration of an expected command line argument.
// Build it with NewArgument.
type Argument = argument.Argument

// Kind - Indicates how an argument consumes tokens.
type Kind = argument.Kind

// Argument Kinds
const (
	// KeyAndValue arguments are called as `--name value`.
	KeyAndValue = argument.KeyAndValue
	// KeyOnly arguments are switches called as `--name` and stored as "true".
	KeyOnly = argument.KeyOnly
	// ValueOnly is the positional argument, a bare value without a flag.
	// Only one is allowed per configuration.
	ValueOnly = argument.ValueOnly
)

// ModifyFn - Function signature for functions that modify an argument declaration.
type ModifyFn func(*Argument)

// NewArgument - Returns a new argument declaration.
//
//	simplecli.NewArgument("input", simplecli.KeyAndValue,
//		simplecli.Alias("i"),
//		simplecli.Required(),
//		simplecli.Description("File used as input for processing"),
//		simplecli.InputName("/path/to/file"))
func NewArgument(longName string, kind Kind, fns ...ModifyFn) *Argument {
	a := argument.New(longName, kind)
	for _, fn := range fns {
		fn(a)
	}
	return a
}

// Alias - Sets the short name, matched by `-name`.
func Alias(shortName string) ModifyFn {
	return func(a *Argument) {
		a.SetShortName(shortName)
	}
}

// Default - Value used when a KeyAndValue flag is given without a value.
// It is not used when the flag is missing altogether.
func Default(value string) ModifyFn {
	return func(a *Argument) {
		a.SetDefault(value)
	}
}

// Required - Parsing fails when the argument doesn't resolve to a value.
func Required() ModifyFn {
	return func(a *Argument) {
		a.SetObligatory(true)
	}
}

// Description - Add a description to an argument for use in automated help.
func Description(msg string) ModifyFn {
	return func(a *Argument) {
		a.SetDescription(msg)
	}
}

// InputName - Name of the value shown in automated help, `<value>` by default.
func InputName(name string) ModifyFn {
	return func(a *Argument) {
		a.SetInputName(name)
	}
}
