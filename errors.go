// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/pkg/errors"

// Construction errors: these are the only errors the package returns
// from a non-I/O, non-serialization path. Apply, Ite, Evaluate,
// ReachableCount and Iterator never fail semantically (spec.md §7);
// only a Renamer built from inconsistent variable lists, a Replace
// whose renaming breaks the strict variable order, or a malformed
// stream handed to Load, can fail.
var (
	errNewRenamerLength      = errors.New("robdd: oldvars and newvars must have the same length")
	errNewRenamerDuplicate   = errors.New("robdd: duplicate variable in oldvars")
	errNewRenamerTargetClash = errors.New("robdd: duplicate variable in newvars")
	errNewRenamerOverlap     = errors.New("robdd: variable in newvars also occurs in oldvars")
	errReplaceAmbiguous      = errors.New("robdd: replace produced an ambiguous variable order")
)
