// Package merge drives one round of author-cluster merging.
//
// A round takes the clusters already accepted for a name block (base) and a
// batch of freshly built clusters (incoming). Every base/incoming pair is
// scored, the score matrix is mapped one-to-one with a strategy from package
// assign, and each mapped pair is merged unless its score is under the
// threshold or the two clusters hate each other. Incoming clusters left
// unmerged join base as new identities, so incoming ends empty.
//
// Scoring is pluggable through Scorer. FittedScorer turns a raw pairwise
// feature (for example namesim.ClusterFeature) into a probability with a
// quadratic curve fitted by package lsq.
//
// MergeBlocks runs independent blocks concurrently on a bounded errgroup.
// A block must be closed: it shares no set with another block, and its
// clusters hate only clusters of the same block. Both are checked up front
// (ErrSharedSet, ErrCrossBlockHate).
//
// Logging goes through a zerolog.Logger given WithLogger: one Info line per
// block and one Debug line per proposed pair.
package merge
