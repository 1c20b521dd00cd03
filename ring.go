package redis

import (
	"hash/crc32"
	"sort"
	"strconv"
)

// replicasPerNode is the number of virtual replicas synthesized per node to
// smooth load distribution.
const replicasPerNode = 64

// hashRing is a sorted sequence of (hash, node) entries realizing a
// consistent-hash mapping from keys to nodes. It is effectively immutable
// after setup: add/remove only run during client construction, never
// concurrently with get.
type hashRing struct {
	hashes []uint32 // strictly sorted ascending
	nodes  []string // nodes[i] is the node owning hashes[i]
}

func newHashRing(nodeAddrs []string) *hashRing {
	r := &hashRing{}
	for _, addr := range nodeAddrs {
		r.add(addr)
	}
	return r
}

// ringHash is the ring's hash function: CRC32 of the given bytes. Not
// swappable for xxhash or another fast hash without changing every routing
// decision downstream callers depend on (see DESIGN.md).
func ringHash(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// add inserts replicasPerNode virtual replicas for node, keyed by
// hash("<node>:<i>") for i in [0, replicasPerNode). Existing entries' hashes
// are not reordered, only new ones are inserted, and the result stays sorted
// ascending.
func (r *hashRing) add(node string) {
	for i := 0; i < replicasPerNode; i++ {
		h := ringHash([]byte(node + ":" + strconv.Itoa(i)))
		idx := sort.Search(len(r.hashes), func(j int) bool { return r.hashes[j] >= h })
		r.hashes = append(r.hashes, 0)
		r.nodes = append(r.nodes, "")
		copy(r.hashes[idx+1:], r.hashes[idx:])
		copy(r.nodes[idx+1:], r.nodes[idx:])
		r.hashes[idx] = h
		r.nodes[idx] = node
	}
}

// remove erases the replicasPerNode virtual replicas contributed by node.
// It hashes with the same "<node>:<i>" separator add uses, so every replica
// add inserted is findable and removable by this method.
func (r *hashRing) remove(node string) {
	for i := 0; i < replicasPerNode; i++ {
		h := ringHash([]byte(node + ":" + strconv.Itoa(i)))
		idx := sort.Search(len(r.hashes), func(j int) bool { return r.hashes[j] >= h })
		if idx < len(r.hashes) && r.hashes[idx] == h && r.nodes[idx] == node {
			r.hashes = append(r.hashes[:idx], r.hashes[idx+1:]...)
			r.nodes = append(r.nodes[:idx], r.nodes[idx+1:]...)
		}
	}
}

// get returns the node owning key: the smallest virtual replica whose hash
// is >= hash(key), wrapping around to the first entry when key's hash
// exceeds the maximum.
func (r *hashRing) get(key []byte) (string, bool) {
	if len(r.hashes) == 0 {
		return "", false
	}
	h := ringHash(key)
	idx := floorSearch(r.hashes, h)
	if idx == len(r.hashes) {
		idx = 0
	}
	return r.nodes[idx], true
}

// floorSearch returns the index of the smallest element of the sorted slice
// hashes that is >= target, or len(hashes) if none exists. lower and upper
// are kept as plain ints and the midpoint is lower + (upper-lower)/2, which
// cannot overflow and always floors.
func floorSearch(hashes []uint32, target uint32) int {
	lower, upper := 0, len(hashes)
	for lower < upper {
		mid := lower + (upper-lower)/2
		if hashes[mid] >= target {
			upper = mid
		} else {
			lower = mid + 1
		}
	}
	return lower
}
