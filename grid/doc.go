// Package grid treats a rectangular 2D field of integer cells as an
// implicit graph and finds unweighted shortest paths over it.
//
// What:
//
//   - Grid stores Width×Height cells row-major; Position{X, Y} addresses
//     them with (0,0) at the top-left.
//   - Neighbours follow the grid's Connectivity (Conn4 by default, Conn8
//     to include diagonals).
//   - ShortestPath runs a breadth-first search from one cell until a goal
//     predicate holds. The caller decides which moves are legal through a
//     canStep predicate, so one grid serves forward and reverse searches.
//
// Why:
//
//   - Puzzle inputs are small dense character maps. Indexing a flat slice
//     avoids building an explicit vertex/edge graph first.
//
// Complexity:
//
//   - New, FromLines: O(W·H) time and memory.
//   - ShortestPath: O(W·H·d) time, O(W·H) memory, d = neighbours per cell.
package grid
