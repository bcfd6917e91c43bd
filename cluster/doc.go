// Package cluster models candidate authorial identities.
//
// A Cluster is a set of signature ids (one signature = one author-name
// occurrence on one record) believed to belong to the same person, plus a
// symmetric "hate" relation naming the clusters it must never be merged with.
//
// A Set owns an ordered collection of clusters and keeps the union of their
// ids. The union is maintained incrementally by every mutating call, so
// AllBibs and NumAllBibs are never stale; UpdateBibs recomputes it from
// scratch and doubles as a consistency check.
//
// Invariants:
//   - hate is symmetric and never reflexive;
//   - no signature id belongs to two clusters of the same Set;
//   - a cluster belongs to at most one Set at a time.
//
// Group builds the initial Set from strong pairwise links with a union–find.
//
// Neither Cluster nor Set is safe for concurrent mutation.
package cluster
