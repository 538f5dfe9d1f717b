// Package hash provides xxh3-based hashing for rank rings and task fingerprints.
package hash

import (
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Ring implements a consistent hash ring of ranks with virtual nodes.
//
// Every rank builds the identical ring from (size, virtualNodes, seed), so a
// key maps to the same rank everywhere without communication.
type Ring struct {
	// nodes contains all virtual nodes on the ring, sorted by hash
	nodes []virtualNode

	size int
	seed uint64
}

// virtualNode represents a virtual node on the hash ring.
type virtualNode struct {
	hash uint64 // Position on the ring
	rank int    // Rank owning this virtual node
}

// NewRing creates a consistent hash ring over ranks 0..size-1.
//
// Parameters:
//   - size: Number of ranks
//   - virtualNodesPerRank: Number of virtual nodes per rank (higher = better distribution)
//   - seed: Seed for the hash function (0 means unseeded)
//
// Returns:
//   - *Ring: Initialized hash ring
//
// Example:
//
//	ring := hash.NewRing(4, 150, 0)
//	rank := ring.RankFor(hash.TaskKey(&task, 0))
func NewRing(size int, virtualNodesPerRank int, seed uint64) *Ring {
	size = max(size, 0)
	virtualNodesPerRank = max(virtualNodesPerRank, 1)

	ring := &Ring{
		nodes: make([]virtualNode, 0, size*virtualNodesPerRank),
		size:  size,
		seed:  seed,
	}

	for rank := range size {
		ring.addRank(rank, virtualNodesPerRank)
	}

	// Ties on hash are broken by rank so that the order never depends on insertion
	slices.SortFunc(ring.nodes, func(a, b virtualNode) int {
		if a.hash < b.hash {
			return -1
		}
		if a.hash > b.hash {
			return 1
		}

		return a.rank - b.rank
	})

	return ring
}

// RankFor returns the rank owning the given key hash, or -1 for an empty ring.
//
// Uses binary search to find the first virtual node whose hash is >= key.
// If no such node exists, wraps around to the first node.
func (r *Ring) RankFor(key uint64) int {
	if len(r.nodes) == 0 {
		return -1
	}

	idx, _ := slices.BinarySearchFunc(r.nodes, key, func(node virtualNode, t uint64) int {
		if node.hash < t {
			return -1
		}
		if node.hash > t {
			return 1
		}

		return 0
	})
	if idx >= len(r.nodes) {
		idx = 0
	}

	return r.nodes[idx].rank
}

// Size returns the total number of virtual nodes on the ring.
func (r *Ring) Size() int {
	return len(r.nodes)
}

// Ranks returns the number of ranks on the ring.
func (r *Ring) Ranks() int {
	return r.size
}

// addRank adds virtual nodes for a rank to the ring.
func (r *Ring) addRank(rank int, virtualNodes int) {
	prefix := "rank-" + strconv.Itoa(rank) + "#"
	for i := range virtualNodes {
		r.nodes = append(r.nodes, virtualNode{
			hash: r.hash(prefix + strconv.Itoa(i)),
			rank: rank,
		})
	}
}

func (r *Ring) hash(key string) uint64 {
	if r.seed != 0 {
		return xxh3.HashStringSeed(key, r.seed)
	}

	return xxh3.HashString(key)
}
