// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"fmt"
	"sort"
	"strings"
)

// strategyConstructors maps registry names to constructors. Strategies are
// data behind one capability rather than a type hierarchy, so a lookup
// table is all the dispatch needed.
var strategyConstructors = map[string]func() Strategy{
	StrategyExact:      func() Strategy { return ExactStrategy{} },
	StrategyFuzzy:      func() Strategy { return FuzzyStrategy{} },
	StrategyContextual: func() Strategy { return ContextualStrategy{} },
}

// New returns the strategy registered under name. Lookup is case-sensitive.
// The returned instance holds no mutable state: it may be reused across
// calls or requested fresh per call, both are safe.
func New(name string) (Strategy, error) {
	constructor, ok := strategyConstructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return constructor(), nil
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(strategyConstructors))
	for name := range strategyConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
