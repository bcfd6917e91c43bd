// Package authorid is the in-memory core of an author-disambiguation pipeline:
// deciding which bibliographic signatures were written by the same person.
//
// What is inside
//
//	cluster/  Cluster (a set of signature ids plus a symmetric "hate"
//	          relation) and Set (disjoint clusters with an always-current
//	          union of ids); Group builds a Set from co-reference links.
//	matrix/   a small dense row-major float64 matrix with sentinel errors.
//	assign/   one-to-one mappings on score matrices: the greedy
//	          maximized mapping and an optimal Hungarian alternative.
//	lsq/      quadratic least-squares fit on the 3×3 normal equations.
//	namesim/  author-name normalisation and agreement scores.
//	merge/    the merge round: score, map, then merge or adopt. Runs
//	          independent blocks concurrently; configurable from YAML.
//
// Everything is deterministic: equal scores resolve in row-major order and
// no map iteration order reaches an output.
//
// Quick start
//
//	base, _ := cluster.NewSet(cluster.New(1, 2))
//	incoming, _ := cluster.NewSet(cluster.New(10))
//	rep, err := merge.Merge(ctx, base, incoming, scorer)
//
// See examples/ for a runnable program.
package authorid
