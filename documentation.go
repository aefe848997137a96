// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package simplecli - Declarative command line argument parser.

Declare the expected arguments once, then parse any given slice of strings
into a map from argument long name to its string value.

	cli := simplecli.New(
		simplecli.NewArgument("input", simplecli.KeyAndValue, simplecli.Alias("i"), simplecli.Required()),
		simplecli.NewArgument("verbose", simplecli.KeyOnly, simplecli.Alias("v")),
		simplecli.NewArgument("target", simplecli.ValueOnly),
	)
	result, err := cli.Parse(os.Args)

# Features

• Support for `--long` and `-s` short flags.
There is no bundling and no `--name=value` form.

• Three kinds of arguments:
  - KeyAndValue: `--name value`.
  - KeyOnly: `--name`, stored as "true".
  - ValueOnly: a single bare positional value.

• Defaults for KeyAndValue flags given without a value, either as the last
token or directly followed by another flag.

• Required arguments.

• Typed errors: every error is a *ParseError that matches ErrorParsing and
the per kind error values with errors.Is.

• Suggestions for mistyped flags.

• Usage line and option list automated help.

• ParseLine to parse a single shell style command line.

• Errors and help headers exposed as public variables in the text package to
allow overriding them for internationalization.

# Warnings

Configuration mistakes are written to Writer when calling New, they never panic:

• Defined more than one ValueOnly argument.

• Defined the same long or short name twice.
*/
package simplecli
