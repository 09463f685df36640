package harness

import "errors"

// ErrNoEvaluators indicates NewHarness was called with an empty evaluator
// list; a harness with nothing to evaluate cannot produce a meaningful
// CSV schema.
var ErrNoEvaluators = errors.New("harness: no evaluators configured")

// ErrArgsHeaderMismatch indicates RunTest was called with a number of
// arguments that does not match the ArgsHeaders configured at
// construction time.
var ErrArgsHeaderMismatch = errors.New("harness: argument count does not match headers")

// ErrOutputOpen indicates one of the two output CSV files could not be
// created or truncated for writing. Fatal at construction time, matching
// the reference's behaviour of aborting before any replicate runs.
var ErrOutputOpen = errors.New("harness: failed to open output file")
