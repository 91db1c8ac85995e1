// Package garden measures and prices the regions of a garden map.
//
// What:
//
//   - Perimeter counts the unit cell edges on a region's boundary.
//   - Sides counts maximal straight runs of boundary, i.e. the number of
//     sides a polygon drawn around the region would have, holes included.
//   - Survey measures every region of a gridgraph.GridGraph.
//   - TotalPrice sums area×perimeter or area×sides over measured plots.
//
// Why:
//
//   - Fencing estimates: a fence is priced per unit of boundary, or per
//     straight side under a bulk discount.
//
// Complexity:
//
//   - Perimeter: O(A) for a region of area A.
//   - Sides:     O(B) for a region whose bounding box holds B cells.
//   - Survey:    O(W×H) for extraction plus the bounding-box cells of
//     every region for Sides.
//
// Errors:
//
//   - Price returns the gridgraph loader errors (ErrEmptyGrid,
//     ErrNonRectangular, ErrIllegalSymbol) for malformed maps.
package garden
