// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// errors.go - sentinel errors for the chain package.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Methods attach context as "<Method>(args): ...: %w".
//   • Internal invariant violations during Build panic with a "chain: internal:"
//     prefix; they indicate a builder bug, never bad input.

package chain

import "errors"

// ErrInvalidLength indicates a non-positive chain or branch length.
var ErrInvalidLength = errors.New("chain: length must be positive")

// ErrUnconfiguredParentChain indicates ChainAt (or Build) before the first Chain call.
var ErrUnconfiguredParentChain = errors.New("chain: parent chain not configured")

// ErrInvalidLocant indicates a locant outside [1, ChainLen()] or one whose
// index is not yet part of the realized parent chain.
var ErrInvalidLocant = errors.New("chain: invalid locant")

// ErrBuilderConsumed indicates the session was used after a successful Build.
var ErrBuilderConsumed = errors.New("chain: builder already consumed by Build")
