// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argument

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		argument *Argument
		value    string
		ok       bool
		required bool
	}{
		{"key only", New("verbose", KeyOnly), "true", true, false},
		{"key only required", New("verbose", KeyOnly).SetObligatory(true), "true", true, false},
		{"key only with default", New("verbose", KeyOnly).SetDefault("false"), "true", true, false},
		{"default", New("level", KeyAndValue).SetDefault("info"), "info", true, false},
		{"empty default", New("level", KeyAndValue).SetDefault(""), "", true, false},
		{"default required", New("level", KeyAndValue).SetDefault("info").SetObligatory(true), "info", true, false},
		{"required", New("level", KeyAndValue).SetObligatory(true), "", false, true},
		{"optional", New("level", KeyAndValue), "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok, required := tt.argument.Resolve()
			if value != tt.value || ok != tt.ok || required != tt.required {
				t.Errorf("Resolve() = (%q, %t, %t), want (%q, %t, %t)", value, ok, required, tt.value, tt.ok, tt.required)
			}
		})
	}
}

func TestSynopsis(t *testing.T) {
	tests := []struct {
		name     string
		argument *Argument
		spelling string
		synopsis string
	}{
		{"key and value", New("input", KeyAndValue), "--input <value>", "[--input <value>]"},
		{"key and value input name", New("input", KeyAndValue).SetInputName("/path/to/file").SetObligatory(true),
			"--input </path/to/file>", "--input </path/to/file>"},
		{"key and value alias hidden", New("input", KeyAndValue).SetShortName("i"), "--input <value>", "[--input <value>]"},
		{"key only", New("input", KeyOnly).SetObligatory(true), "--input", "--input"},
		{"key only alias", New("input", KeyOnly).SetShortName("i"), "--input | -i", "[--input | -i]"},
		{"key only input name ignored", New("input", KeyOnly).SetInputName("file"), "--input", "[--input]"},
		{"value only", New("input", ValueOnly), "<value>", "[<value>]"},
		{"value only input name", New("input", ValueOnly).SetInputName("valueOnly").SetObligatory(true), "<valueOnly>", "<valueOnly>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.argument.Spelling(); got != tt.spelling {
				t.Errorf("Spelling() = %q, want %q", got, tt.spelling)
			}
			if got := tt.argument.Synopsis(); got != tt.synopsis {
				t.Errorf("Synopsis() = %q, want %q", got, tt.synopsis)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	a := New("input", KeyAndValue).
		SetShortName("i").
		SetDefault("in.txt").
		SetObligatory(true).
		SetDescription("File used as input").
		SetInputName("file")

	if a.LongName() != "input" {
		t.Errorf("LongName() = %q", a.LongName())
	}
	if s, ok := a.ShortName(); s != "i" || !ok {
		t.Errorf("ShortName() = (%q, %t)", s, ok)
	}
	if a.Kind() != KeyAndValue {
		t.Errorf("Kind() = %s", a.Kind())
	}
	if v, ok := a.DefaultValue(); v != "in.txt" || !ok {
		t.Errorf("DefaultValue() = (%q, %t)", v, ok)
	}
	if !a.Obligatory() {
		t.Errorf("Obligatory() = false")
	}
	if a.Description() != "File used as input" || a.InputName() != "file" {
		t.Errorf("Description(), InputName() = %q, %q", a.Description(), a.InputName())
	}

	b := New("input", KeyOnly)
	if _, ok := b.ShortName(); ok {
		t.Errorf("ShortName() reported an alias that was never set")
	}
	if _, ok := b.DefaultValue(); ok {
		t.Errorf("DefaultValue() reported a default that was never set")
	}
}

func TestCopy(t *testing.T) {
	a := New("input", KeyAndValue).SetDefault("one")
	c := a.Copy()
	a.SetDefault("two").SetObligatory(true)
	if v, _ := c.DefaultValue(); v != "one" {
		t.Errorf("copy default changed to %q", v)
	}
	if c.Obligatory() {
		t.Errorf("copy obligatory changed")
	}
}

func TestKindString(t *testing.T) {
	for kind, expected := range map[Kind]string{
		KeyAndValue: "KeyAndValue",
		KeyOnly:     "KeyOnly",
		ValueOnly:   "ValueOnly",
		Kind(7):     "Kind(7)",
	} {
		if got := kind.String(); got != expected {
			t.Errorf("String() = %q, want %q", got, expected)
		}
	}
}
