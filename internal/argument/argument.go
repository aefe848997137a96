// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argument - internal argument declaration and methods.
package argument

import (
	"fmt"

	"github.com/DavidGamba/go-simplecli/text"
)

// Kind - Indicates how an argument consumes tokens.
type Kind int

// Argument Kinds
const (
	KeyAndValue Kind = iota // --name value
	KeyOnly                 // --name
	ValueOnly               // value
)

func (k Kind) String() string {
	switch k {
	case KeyAndValue:
		return "KeyAndValue"
	case KeyOnly:
		return "KeyOnly"
	case ValueOnly:
		return "ValueOnly"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TrueValue - Value stored for a KeyOnly argument found in the input.
const TrueValue = "true"

// Argument - Declaration of an expected command line argument.
//
// Set methods are meant to be used while building the declaration only.
type Argument struct {
	longName     string
	shortName    string
	hasShort     bool
	kind         Kind
	defaultValue string
	hasDefault   bool
	obligatory   bool
	description  string
	inputName    string
}

// New - Returns a new argument declaration.
func New(longName string, kind Kind) *Argument {
	return &Argument{longName: longName, kind: kind}
}

// SetShortName - Sets the alias matched by `-name`.
func (a *Argument) SetShortName(name string) *Argument {
	a.shortName = name
	a.hasShort = true
	return a
}

// SetDefault - Sets the value used when the flag is given without a value.
func (a *Argument) SetDefault(value string) *Argument {
	a.defaultValue = value
	a.hasDefault = true
	return a
}

// SetObligatory - Marks the argument as required.
func (a *Argument) SetObligatory(b bool) *Argument {
	a.obligatory = b
	return a
}

func (a *Argument) SetDescription(msg string) *Argument {
	a.description = msg
	return a
}

func (a *Argument) SetInputName(name string) *Argument {
	a.inputName = name
	return a
}

// LongName - Name matched by `--name` and used as the result key.
func (a *Argument) LongName() string { return a.longName }

// ShortName - Alias matched by `-name`, ok is false when there is none.
func (a *Argument) ShortName() (string, bool) { return a.shortName, a.hasShort }

func (a *Argument) Kind() Kind { return a.kind }

// DefaultValue - ok is false when no default was declared.
func (a *Argument) DefaultValue() (string, bool) { return a.defaultValue, a.hasDefault }

func (a *Argument) Obligatory() bool { return a.obligatory }

func (a *Argument) Description() string { return a.description }

func (a *Argument) InputName() string { return a.inputName }

// Copy - Returns a detached copy of the declaration.
func (a *Argument) Copy() *Argument {
	c := *a
	return &c
}

// Resolve - Returns the value for a flag that received no explicit value.
// ok is false when the argument should be left out of the result.
// required is true for obligatory arguments without a default.
func (a *Argument) Resolve() (value string, ok bool, required bool) {
	if a.kind == KeyOnly {
		return TrueValue, true, false
	}
	if a.hasDefault {
		return a.defaultValue, true, false
	}
	if a.obligatory {
		return "", false, true
	}
	return "", false, false
}

// Spelling - Flag form used on the command line and in help, without brackets.
func (a *Argument) Spelling() string {
	valueName := a.inputName
	if valueName == "" {
		valueName = text.HelpValueName
	}
	switch a.kind {
	case KeyOnly:
		if a.hasShort {
			return fmt.Sprintf("--%s | -%s", a.longName, a.shortName)
		}
		return "--" + a.longName
	case ValueOnly:
		return "<" + valueName + ">"
	default: // KeyAndValue
		return fmt.Sprintf("--%s <%s>", a.longName, valueName)
	}
}

// Synopsis - Help unit for the usage line.
// Optional arguments are wrapped in brackets.
func (a *Argument) Synopsis() string {
	if a.obligatory {
		return a.Spelling()
	}
	return "[" + a.Spelling() + "]"
}
