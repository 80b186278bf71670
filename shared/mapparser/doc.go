// Package mapparser turns a raster mask into collision polygons.
//
// What:
//
//   - FindBlobs splits the mask's foreground into 4-connected blobs.
//   - FindInterval locates and consumes a bounded run of foreground cells in one row.
//   - Grow extends a run downwards into a staircase region whose edges may only
//     move inward at a non-decreasing rate, consuming every cell it covers.
//   - Simplify turns a region into a polygon outline, dropping collinear corners.
//   - Decompose drives all of the above for a whole raster.
//
// Decomposition is greedy and row-major: the polygons produced depend on scan
// order, and every foreground pixel ends up in exactly one region.
//
// Coordinates are (row, col). Polygon vertices sit on pixel corners, so a
// region covering rows [r0, r1] has its bottom edge at row r1+1.
//
// Complexity:
//
//   - FindBlobs: O(H×W) time and memory.
//   - Decompose: O(H×W) over all regions of all blobs, plus O(W) per
//     interval lookup.
//
// Errors:
//
//   - ErrEmptySeed: Grow was seeded on a background cell.
//   - ErrMalformedPolygon: an emitted outline failed validation.
package mapparser
