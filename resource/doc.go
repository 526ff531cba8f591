// Package resource defines the closed set of resource kinds tracked by the
// robot-factory simulation and a fixed-arity integer vector indexed by them.
//
// What:
//
//   - Kind enumerates Ore, Clay, Obsidian and Geode (NumKinds == 4).
//   - Vector is a [NumKinds]int value type with indexed access,
//     containment test and elementwise arithmetic.
//
// Why:
//
//   - The kind set is known at design time, so a plain array replaces a
//     keyed container: comparisons and arithmetic stay branch-free in the
//     search hot loop, and a Vector is comparable (usable in map keys).
//
// Contracts:
//
//   - Vectors are values. Every operation returns a new Vector and never
//     mutates its receiver.
//   - RemoveAll requires the caller to have verified Contains(other) first.
//     It panics if any entry would go negative; subtracting an unaffordable
//     cost is a logic error in the caller.
//
// Complexity: every operation is O(NumKinds) time and allocation-free.
package resource
