// Package region partitions a labelled grid.Grid into maximal 4-connected
// regions of equal label and measures their outlines.
//
// What:
//
//   - Regions scans seeds in row-major order and flood-fills each unvisited one,
//     one generation at a time, collecting:
//   - Area:      member coordinates
//   - Perimeter: number of (member, outside-neighbour) pairs, where outside
//     means out of bounds or differently labelled
//   - Boundary:  the distinct outside neighbours (a coordinate adjacent to the
//     region on several sides is stored once but counted once per side)
//   - Sides counts the straight edges of a region's outline. Each boundary cell
//     faces the region in 1..4 directions; every face belongs to exactly one
//     side. The counter consumes one face, then walks perpendicular to it in
//     both directions consuming the same face on adjacent boundary cells.
//   - Price and BulkPrice aggregate area×perimeter and area×sides.
//
// Invariants (checked by tests):
//
//   - Σ area over all regions = rows×cols, and no coordinate is in two regions.
//   - Perimeter ≥ |Boundary| and Sides ≤ Perimeter.
//   - Sides ≥ 4 for any non-empty region; a single cell has area 1,
//     perimeter 4 and 4 sides.
//   - The side count does not depend on the order boundary cells are picked.
//
// Complexity:
//
//   - Regions: O(R×C) time and memory.
//   - Sides:   O(P) for a region of perimeter P.
//
// Errors:
//
//   - ErrInvariant: raised with panic if the side counter picks a boundary cell
//     with no remaining face; that means the Region was built inconsistently.
package region
