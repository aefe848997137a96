// This file is part of go-simplecli.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package simplecli

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxSuggestions - Upper bound of spellings offered for an unknown argument.
var MaxSuggestions = 3

// suggestions - Returns the declared flag spellings closest to token, best first.
func suggestions(token string, spellings []string) []string {
	if len(spellings) == 0 || MaxSuggestions <= 0 {
		return nil
	}
	ranks := fuzzy.RankFindFold(token, spellings)
	sort.Stable(ranks)
	var out []string
	for _, r := range ranks {
		if len(out) == MaxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
