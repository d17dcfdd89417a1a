package engine

import "errors"

// ErrInvalidProblem marks malformed or inconsistent problem input.
// Adapters wrap it with detail and return it from their constructors,
// before any event is produced. The engine itself never returns it:
// once a cursor exists, every outcome (including "no path found" and
// "cap reached") is reported as terminal event data, not as an error.
var ErrInvalidProblem = errors.New("invalid problem")
