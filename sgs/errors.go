package sgs

import "errors"

// ErrDegreeMismatch indicates a generator's degree does not match the
// requested n. The canonicalizer fixes n = rank once at entry (spec
// §4.1), so a mismatch here means a caller built generators against the
// wrong rank.
var ErrDegreeMismatch = errors.New("sgs: generator degree does not match n")
