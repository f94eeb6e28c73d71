// Package gridpath is a toolkit for walking rectangular grids: reachability,
// region extraction, straight-side counting and weighted state-space search,
// plus the puzzle solvers built on top of them.
//
// 🚀 What is in the box?
//
//	grid/      — Coord, Vec[T], Direction, Grid[T] and text parsing
//	bfs/       — generational frontier reachability with hooks and depth caps
//	dfs/       — memoised distinct-path counting over acyclic step relations
//	region/    — regions, perimeters, boundaries, straight sides, fence prices
//	dijkstra/  — generic Dijkstra keeping every equal-cost predecessor
//	maze/      — (location, facing) reindeer maze on top of dijkstra
//	memspace/  — falling-bytes memory space: shortest walk and first cut
//	trail/     — trailhead scores (bfs) and ratings (dfs)
//	patrol/    — guard walk and the parallel loop-obstruction search
//	antenna/   — antennas and antinodes as a closed cell sum type
//	warehouse/ — box-pushing robot with narrow and wide boxes
//
// The command cmd/gridwalk runs any solver on an input file.
//
// Quick ASCII example:
//
//	AAAA     region A: area 4, perimeter 10, sides 4
//	BBCD     region C: area 4, perimeter 10, sides 8
//	BBCC
//	EEEC
//
//	go get github.com/katalvlaran/gridpath
package gridpath
