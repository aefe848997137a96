// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// They are variables so callers can replace them, for example to localize the messages.
package text

// ErrorUnknownArgument - Token looked like a flag but no declaration matches it.
var ErrorUnknownArgument = "unknown argument '%s'"

// ErrorUnexpectedValueWithoutKey - Bare value with no pending flag and no positional slot left.
var ErrorUnexpectedValueWithoutKey = "unexpected value '%s' without a key"

// ErrorRequiredKeyHasNoValue - Obligatory argument never resolved to a value.
var ErrorRequiredKeyHasNoValue = "required key '%s' has no value"

// ErrorUnexpectedArgument - Reserved.
var ErrorUnexpectedArgument = "unexpected argument '%s'"

// ErrorSplittingLine - Command line couldn't be split into tokens.
var ErrorSplittingLine = "unable to split command line"

// MessageDidYouMean - Appended to ErrorUnknownArgument when there are close matches.
var MessageDidYouMean = ", did you mean %s?"

// WarningTooManyValueOnly - More than one positional declaration.
var WarningTooManyValueOnly = "WARNING: too many value only arguments, '%s' ignored in favour of '%s'"

// WarningDuplicateName - Long or short name declared more than once.
var WarningDuplicateName = "WARNING: duplicate argument name '%s', first declaration wins"

// HelpUsagePrefix - Leading word of the usage line.
var HelpUsagePrefix = "Usage:"

// HelpOptionsHeader - Header for the optional argument list.
var HelpOptionsHeader = "OPTIONS"

// HelpRequiredOptionsHeader - Header for the obligatory argument list.
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpDefaultValue - Suffix used to show a default value in the option list.
var HelpDefaultValue = "(default: %s)"

// HelpValueName - Placeholder used when an argument has no input name.
var HelpValueName = "value"
