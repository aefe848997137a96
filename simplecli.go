// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package simplecli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-simplecli/internal/argument"
	"github.com/DavidGamba/go-simplecli/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

var Writer io.Writer = os.Stderr // io.Writer to write warnings and ParseArgs failures to. Defaults to os.Stderr.

// SimpleCLI - Validated argument configuration.
// It holds no parsing state so a single instance can be shared between goroutines.
type SimpleCLI struct {
	// Declarations in configuration order, used for help.
	arguments []*argument.Argument

	longIndex  map[string]*argument.Argument
	shortIndex map[string]*argument.Argument

	// The single ValueOnly slot, nil when there is none.
	positional *argument.Argument

	// Obligatory declarations checked after the scan.
	required []*argument.Argument

	// Flag spellings used for suggestions.
	spellings []string
}

// New - Returns a parser for the given argument declarations.
//
// The declarations are copied, later changes to them are not seen by the parser.
// Configuration problems are reported as warnings on Writer and never abort:
//
//   - A repeated long name is ignored, the first declaration wins.
//   - A repeated short name only keeps the first alias.
//   - Only the first ValueOnly declaration is the positional slot.
func New(arguments ...*Argument) *SimpleCLI {
	cli := &SimpleCLI{
		arguments:  make([]*argument.Argument, 0, len(arguments)),
		longIndex:  map[string]*argument.Argument{},
		shortIndex: map[string]*argument.Argument{},
	}
	seen := map[string]bool{}
	for _, a := range arguments {
		a = a.Copy()
		cli.arguments = append(cli.arguments, a)

		if seen[a.LongName()] {
			fmt.Fprintf(Writer, text.WarningDuplicateName+"\n", a.LongName())
			continue
		}
		seen[a.LongName()] = true

		if a.Kind() == argument.ValueOnly {
			if cli.positional != nil {
				fmt.Fprintf(Writer, text.WarningTooManyValueOnly+"\n", a.LongName(), cli.positional.LongName())
				continue
			}
			cli.positional = a
		} else {
			cli.longIndex[a.LongName()] = a
			cli.spellings = append(cli.spellings, "--"+a.LongName())
			if short, ok := a.ShortName(); ok {
				if _, ok := cli.shortIndex[short]; ok {
					fmt.Fprintf(Writer, text.WarningDuplicateName+"\n", short)
				} else {
					cli.shortIndex[short] = a
					cli.spellings = append(cli.spellings, "-"+short)
				}
			}
		}
		if a.Obligatory() {
			cli.required = append(cli.required, a)
		}
	}
	Logger.Printf("configuration: %d arguments, positional: %t", len(cli.arguments), cli.positional != nil)
	return cli
}

// Arguments - Returns copies of the declarations in configuration order.
func (cli *SimpleCLI) Arguments() []*Argument {
	out := make([]*Argument, 0, len(cli.arguments))
	for _, a := range cli.arguments {
		out = append(out, a.Copy())
	}
	return out
}

// lookup - Returns the declaration for a flag token or nil.
func (cli *SimpleCLI) lookup(t tokenType, name string) *argument.Argument {
	switch t {
	case longFlagToken:
		return cli.longIndex[name]
	case shortFlagToken:
		return cli.shortIndex[name]
	}
	return nil
}
