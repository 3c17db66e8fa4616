// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "errors"

// Matching errors. All are caller errors local to a single Match call; the
// engine holds no state a failed call could corrupt.
var (
	// ErrUnknownStrategy indicates a strategy name not present in the registry.
	ErrUnknownStrategy = errors.New("unknown matching strategy")

	// ErrInvalidConfig indicates a threshold outside [0,100] or a negative
	// context window.
	ErrInvalidConfig = errors.New("invalid match configuration")

	// ErrEmptyEntity indicates an entity that is empty or whitespace-only.
	// An entity with no matches in the corpus is a normal empty result, not
	// this error.
	ErrEmptyEntity = errors.New("entity is empty")
)
