// Package aoc2022 is a collection of Advent of Code 2022 solvers built
// around one algorithmic core: a branch-and-bound search that finds how
// many geodes a robot factory can open within a time budget.
//
// 🚀 What is inside?
//
//	resource/       the four resource kinds and fixed-size amount vectors
//	blueprint/      robot cost tables, parsed from puzzle text, JSON or YAML
//	geode/          the branch-and-bound search (State, Search, MaxGeodes)
//	grid/           rectangular grids with breadth-first shortest paths
//	puzzle/         Solution values, the day registry, input loading
//	puzzle/day12/   hill climbing on a heightmap
//	puzzle/day19/   quality levels and geode products, searched in parallel
//	internal/       configuration, logging and the cobra CLI
//	cmd/            the aoc2022 binary and an AWS Lambda function-URL handler
//
// ✨ Quick start:
//
//	aoc2022 solve 19               # reads .input/19.txt
//	aoc2022 geodes blueprints.yaml --minutes 32
//
// Library packages never log and never touch global state; the CLI and the
// Lambda handler own configuration, logging and output.
package aoc2022
