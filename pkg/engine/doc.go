// Package engine implements a generic, instrumented breadth-first frontier
// search. The algorithm is parameterized by an Adapter that supplies
// problem-specific neighbor generation and goal testing, and every decision
// the search makes is reported as a typed Event on a lazy, one-shot Cursor.
//
// The engine performs no I/O, timing, or serialization: it is a pure,
// deterministic producer of events. Pacing and delivery live in
// pkg/stream; wire encoding lives in pkg/api.
package engine
