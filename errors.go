// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package simplecli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-simplecli/text"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every *ParseError matches it with errors.Is.
var ErrorParsing = errors.New("")

// Per kind errors, matched with errors.Is against a *ParseError.
var (
	ErrorUnknownArgument           = errors.New("unknown argument")
	ErrorUnexpectedValueWithoutKey = errors.New("unexpected value without key")
	ErrorRequiredKeyHasNoValue     = errors.New("required key has no value")
	ErrorUnexpectedArgument        = errors.New("unexpected argument")
)

// ErrorSplittingLine - ParseLine input couldn't be split into tokens.
var ErrorSplittingLine = errors.New(text.ErrorSplittingLine)

// ErrorKind - Category of a parsing failure.
type ErrorKind int

// Error Kinds
const (
	UnknownArgument ErrorKind = iota + 1
	UnexpectedValueWithoutKey
	RequiredKeyHasNoValue

	// UnexpectedArgument is reserved, the parser doesn't produce it.
	UnexpectedArgument
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownArgument:
		return "UnknownArgument"
	case UnexpectedValueWithoutKey:
		return "UnexpectedValueWithoutKey"
	case RequiredKeyHasNoValue:
		return "RequiredKeyHasNoValue"
	case UnexpectedArgument:
		return "UnexpectedArgument"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError - Error returned by Parse.
type ParseError struct {
	Kind ErrorKind

	// Token is the offending input token.
	// For RequiredKeyHasNoValue it is the long name of the argument instead.
	Token string

	// Position is the index of the offending token in the args slice.
	// -1 when the error was detected after all tokens were read.
	Position int

	// Suggestions holds close flag spellings for UnknownArgument.
	Suggestions []string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownArgument:
		msg := fmt.Sprintf(text.ErrorUnknownArgument, e.Token)
		if len(e.Suggestions) > 0 {
			quoted := make([]string, 0, len(e.Suggestions))
			for _, s := range e.Suggestions {
				quoted = append(quoted, "'"+s+"'")
			}
			msg += fmt.Sprintf(text.MessageDidYouMean, strings.Join(quoted, " or "))
		}
		return msg
	case UnexpectedValueWithoutKey:
		return fmt.Sprintf(text.ErrorUnexpectedValueWithoutKey, e.Token)
	case RequiredKeyHasNoValue:
		return fmt.Sprintf(text.ErrorRequiredKeyHasNoValue, e.Token)
	default:
		return fmt.Sprintf(text.ErrorUnexpectedArgument, e.Token)
	}
}

// Is - Every ParseError is an ErrorParsing.
func (e *ParseError) Is(target error) bool {
	return target == ErrorParsing
}

// Unwrap - Returns the per kind error.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case UnknownArgument:
		return ErrorUnknownArgument
	case UnexpectedValueWithoutKey:
		return ErrorUnexpectedValueWithoutKey
	case RequiredKeyHasNoValue:
		return ErrorRequiredKeyHasNoValue
	case UnexpectedArgument:
		return ErrorUnexpectedArgument
	}
	return nil
}
