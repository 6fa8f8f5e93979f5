// Package originshifttests is the root of a small maze engine built around
// the origin-shift algorithm: a perfect maze is stored as a spanning
// arborescence of a grid, and every step moves the root to a random
// neighbour and re-points the old root at it. The maze stays perfect after
// every step, and repeated steps mix it towards a uniformly random spanning
// tree.
//
// Packages, leaves first:
//
//	gridgraph/    Cell, Size, Edge, Path and the up/down/left/right neighbourhood
//	mazetree/     parent-pointer arena, canonical comb start, Validate
//	visits/       per-cell visit counts, 1/(n+1) weights, coverage
//	originshift/  Engine: Step, StepWeighted, StepAll, root toggling, Resize
//	dijkstra/     integer-vertex Dijkstra, the reference path oracle
//	bfs/          integer-vertex BFS with hooks, used for the maze diameter
//	solver/       parent-chain Solve, Reference, PathToRoot, Diameter
//	render/       PNG screenshots and ASCII art
//	metrics/      Prometheus collectors for steps, roots and coverage
//	logging/      slog setup with optional rotating file
//	config/       flags, environment and config file for the commands
//
// Commands:
//
//	cmd/originshift         batch generation with PNG, ASCII and metrics output
//	cmd/originshift-viewer  animated window with fading fresh passages
//
// Quick example, a 3×3 canonical maze after construction (root marked @):
//
//	#######
//	#     #
//	##### #
//	#     #
//	##### #
//	#    @#
//	#######
//
//	go install github.com/Kiryonn/OriginShiftTests/cmd/originshift@latest
package originshifttests
