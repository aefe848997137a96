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
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-simplecli/internal/argument"
	"github.com/DavidGamba/go-simplecli/internal/help"
	"github.com/kballard/go-shellquote"
)

type scanState int

const (
	idle scanState = iota
	awaitingValue
)

// scanner - State for a single Parse call.
type scanner struct {
	cli    *SimpleCLI
	result map[string]string

	state      scanState
	pending    *argument.Argument // set while awaitingValue
	pendingPos int

	positionalFilled bool
}

// Parse - Parse the given args against the configuration.
// args[0] is the program path and it is skipped.
//
// The result maps long names to values. It only holds arguments that were
// given, defaulted or are KeyOnly switches found in the input.
// On error the result is nil and err is a *ParseError.
//
//	cli := simplecli.New(
//		simplecli.NewArgument("input", simplecli.KeyAndValue, simplecli.Required()),
//	)
//	result, err := cli.Parse(os.Args)
func (cli *SimpleCLI) Parse(args []string) (map[string]string, error) {
	s := &scanner{cli: cli, result: map[string]string{}}
	for i := 1; i < len(args); i++ {
		err := s.step(i, args[i])
		if err != nil {
			Logger.Printf("error at %d: %s", i, err)
			return nil, err
		}
	}
	err := s.flush()
	if err != nil {
		Logger.Printf("error at end of input: %s", err)
		return nil, err
	}
	for _, a := range cli.required {
		if _, ok := s.result[a.LongName()]; !ok {
			return nil, &ParseError{Kind: RequiredKeyHasNoValue, Token: a.LongName(), Position: -1}
		}
	}
	return s.result, nil
}

func (s *scanner) step(pos int, token string) error {
	t, name := classify(token)
	Logger.Printf("token %d %q: %s, state: %d", pos, token, t, s.state)

	if t != valueToken {
		a := s.cli.lookup(t, name)
		if a == nil {
			return &ParseError{
				Kind:        UnknownArgument,
				Token:       token,
				Position:    pos,
				Suggestions: suggestions(token, s.cli.spellings),
			}
		}
		// A pending flag followed by another flag never got its value.
		err := s.flush()
		if err != nil {
			return err
		}
		if a.Kind() == argument.KeyOnly {
			s.result[a.LongName()] = argument.TrueValue
			return nil
		}
		s.state = awaitingValue
		s.pending = a
		s.pendingPos = pos
		return nil
	}

	if s.state == awaitingValue {
		s.result[s.pending.LongName()] = token
		s.reset()
		return nil
	}

	if s.cli.positional != nil && !s.positionalFilled {
		s.result[s.cli.positional.LongName()] = token
		s.positionalFilled = true
		return nil
	}
	return &ParseError{Kind: UnexpectedValueWithoutKey, Token: token, Position: pos}
}

// flush - Resolves the pending flag, if any, without an explicit value.
func (s *scanner) flush() error {
	if s.state != awaitingValue {
		return nil
	}
	a, pos := s.pending, s.pendingPos
	s.reset()
	value, ok, required := a.Resolve()
	if required {
		return &ParseError{Kind: RequiredKeyHasNoValue, Token: a.LongName(), Position: pos}
	}
	if ok {
		s.result[a.LongName()] = value
	}
	return nil
}

func (s *scanner) reset() {
	s.state = idle
	s.pending = nil
	s.pendingPos = 0
}

// ParseArgs - Parse the given args and degrade to an empty result on error.
// The error and the help are written to Writer.
//
// An empty result can also mean that no arguments were given, use Parse to tell them apart.
func (cli *SimpleCLI) ParseArgs(args []string) map[string]string {
	result, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(Writer, "ERROR: %s\n", err)
		fmt.Fprint(Writer, cli.Help(args))
		return map[string]string{}
	}
	return result
}

// ParseLine - Split a shell style command line and parse it.
// The first word is the program name.
func (cli *SimpleCLI) ParseLine(line string) (map[string]string, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorSplittingLine, err)
	}
	return cli.Parse(args)
}

// Usage - Returns the single line usage string for the given program name.
//
//	Usage: executable --keyValue </path/to/file> <valueOnly> [--keyOnly]
func (cli *SimpleCLI) Usage(programName string) string {
	return help.Usage(programName, cli.arguments)
}

// Help - Returns the usage line followed by the option list.
// The program name is taken from args[0], os.Args[0] when args is empty.
func (cli *SimpleCLI) Help(args []string) string {
	programPath := ""
	if len(args) > 0 {
		programPath = args[0]
	} else if len(os.Args) > 0 {
		programPath = os.Args[0]
	}
	out := cli.Usage(filepath.Base(programPath)) + "\n"
	if list := help.OptionList(cli.arguments); list != "" {
		out += "\n" + list
	}
	return out
}
