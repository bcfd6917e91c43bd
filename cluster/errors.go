package cluster

import "errors"

// Sentinel errors for cluster and set operations.
var (
	// ErrNilCluster indicates a nil *Cluster argument.
	ErrNilCluster = errors.New("cluster: nil cluster")

	// ErrSelfQuarrel indicates an attempt to make a cluster hate itself.
	ErrSelfQuarrel = errors.New("cluster: cluster cannot quarrel with itself")

	// ErrSelfMerge indicates an attempt to merge a cluster into itself.
	ErrSelfMerge = errors.New("cluster: cluster cannot be merged into itself")

	// ErrHostile indicates a merge between two clusters that hate each other.
	ErrHostile = errors.New("cluster: clusters hate each other")

	// ErrOverlap indicates that a signature id would belong to two clusters of one set.
	ErrOverlap = errors.New("cluster: signature id already held by another cluster")

	// ErrNotMember indicates the cluster does not belong to the set.
	ErrNotMember = errors.New("cluster: cluster is not a member of the set")

	// ErrAlreadyMember indicates the cluster is already a member of the set.
	ErrAlreadyMember = errors.New("cluster: cluster is already a member of the set")

	// ErrForeignCluster indicates the cluster is owned by a different set.
	ErrForeignCluster = errors.New("cluster: cluster belongs to another set")

	// ErrUnknownSignature indicates a link references an id outside the grouped ids.
	ErrUnknownSignature = errors.New("cluster: unknown signature id")
)
