// Package gridgraph treats a 2D grid of symbols as a graph, enabling
// region analysis and filtered reachability over its cells.
//
// What:
//
//   - GridGraph wraps a rectangular [][]rune grid; it is immutable once built.
//   - Regions partitions the grid into maximal 4-connected same-symbol regions.
//   - Reachable walks the grid from a start cell through caller-approved steps.
//   - Parse loads a GridGraph from plain text, one row per line.
//
// Why:
//
//   - Puzzle maps: garden plots, topographic maps, guard patrol floors.
//   - Topology analysis: count regions, holes and their bounding boxes.
//
// Complexity:
//
//   - Regions:   O(W×H×4), Memory: O(W×H).
//   - Reachable: O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Symbol: predicate deciding which runes are legal cells.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrIllegalSymbol: a cell holds a rune rejected by GridOptions.Symbol.
//   - ErrOutOfBounds: a start point lies outside the grid.
package gridgraph
