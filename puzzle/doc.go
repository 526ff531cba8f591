// Package puzzle is the small framework every day's solver plugs into.
//
// A day is built from its input lines by a Factory and answers two parts.
// A Registry maps day numbers to factories; Registry.Solve builds the day,
// times both parts and returns a Report tagged with a fresh run ID so log
// lines from one solve can be correlated.
//
// Answers are Solution values: a signed or unsigned integer, free text, or
// NotImplemented for a part that has no solver yet.
package puzzle
