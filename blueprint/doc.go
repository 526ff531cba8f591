// Package blueprint holds the immutable cost tables ("blueprints") that drive
// the robot-factory search, and the parsers that build them from puzzle input.
//
// What:
//
//   - Blueprint maps every producer kind to the resource.Vector needed to
//     build one producer of that kind. It is built once per problem instance
//     and shared read-only by the whole search.
//
//   - ParseText reads the puzzle's rule text:
//
//     Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//     Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2
//     ore and 7 obsidian.
//
//     Parsing is token-based, so a record wrapped over several lines reads
//     the same as a single-line one.
//
//   - ParseJSON (tidwall/gjson) and ParseYAML (gopkg.in/yaml.v3) read the
//     structured form {"id": 1, "costs": {"ore": {"ore": 4}, ...}}, either as
//     a top-level list or under a "blueprints" key.
//
// Validation:
//
//   - Every producer kind must be declared exactly once.
//   - Amounts must be non-negative, IDs positive and unique per input.
//
// Malformed input is rejected here with a sentinel error (see types.go);
// nothing downstream re-validates a Blueprint.
package blueprint
