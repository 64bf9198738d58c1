// Package arena owns the storage of one JSON document tree. Every node of a
// tree lives in a slot of exactly one Arena, and all growth (string copies,
// array elements, object members) allocates through that Arena.
//
// Nodes are addressed by NodeID, a stable (index, generation) pair. Erasing
// a node, or resetting the arena, bumps the generation of its slot, so a
// NodeID held across an erase is detectably stale: dereferencing it panics
// with ErrStale instead of silently reading unrelated storage.
//
// An Arena is not safe for concurrent mutation; callers serialize access.
package arena

import "fmt"

// NodeID addresses one node slot in an Arena. The zero NodeID is invalid.
type NodeID struct {
	idx uint32
	gen uint32
}

// IsValid reports whether id was ever issued by an arena. It does not check
// staleness; only dereferencing does.
func (id NodeID) IsValid() bool { return id.gen != 0 }

func (id NodeID) String() string {
	return fmt.Sprintf("node(%d@%d)", id.idx, id.gen)
}

type member struct {
	key NodeID
	val NodeID
}

type node struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64

	// str is either a copy held in the arena buffer or a caller-owned view.
	str []byte

	elems   []NodeID
	members []member
}

type slot struct {
	gen  uint32
	node node
}

// Arena owns the node slots and string storage of one tree.
type Arena struct {
	slots []slot
	free  []uint32
	buf   []byte
}

func New() *Arena {
	return &Arena{}
}

// NewNode allocates a fresh Null node.
func (a *Arena) NewNode() NodeID {
	return a.alloc()
}

func (a *Arena) alloc() NodeID {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i].node = node{}
		return NodeID{idx: i, gen: a.slots[i].gen}
	}
	a.slots = append(a.slots, slot{gen: 1})
	return NodeID{idx: uint32(len(a.slots) - 1), gen: 1}
}

func (a *Arena) node(id NodeID) *node {
	if id.gen == 0 || int(id.idx) >= len(a.slots) {
		panic(fmt.Errorf("%w: %s", ErrStale, id))
	}
	s := &a.slots[id.idx]
	if s.gen != id.gen {
		panic(fmt.Errorf("%w: %s", ErrStale, id))
	}
	return &s.node
}

// Release frees the node and, recursively, all its children. The node must
// not be a child of a live container; use the container erase operations for
// those.
func (a *Arena) Release(id NodeID) {
	a.release(id)
}

// release frees the slot of id and, recursively, all its children. The slot
// generation is bumped so outstanding NodeIDs for it become stale.
func (a *Arena) release(id NodeID) {
	n := a.node(id)
	a.releaseChildren(n)
	s := &a.slots[id.idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.node = node{}
	a.free = append(a.free, id.idx)
}

func (a *Arena) releaseChildren(n *node) {
	for _, c := range n.elems {
		a.release(c)
	}
	for _, m := range n.members {
		a.release(m.key)
		a.release(m.val)
	}
	n.elems, n.members = nil, nil
}

// Reset frees every slot, invalidating all outstanding NodeIDs, and drops
// the string buffer. Slot generations survive, so ids from before the reset
// stay detectably stale.
func (a *Arena) Reset() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		s.gen++
		if s.gen == 0 {
			s.gen = 1
		}
		s.node = node{}
		a.free = append(a.free, uint32(i))
	}
	a.buf = nil
}

const bufChunk = 4096

// copyBytes copies src into arena-owned storage and returns the copy. The
// returned slice stays valid for the lifetime of the arena (until Reset).
func (a *Arena) copyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	if len(a.buf)+len(src) > cap(a.buf) {
		size := bufChunk
		if len(src) > size {
			size = len(src)
		}
		a.buf = make([]byte, 0, size)
	}
	n := len(a.buf)
	a.buf = append(a.buf, src...)
	return a.buf[n : n+len(src) : n+len(src)]
}

func (a *Arena) checkKind(id NodeID, k Kind) *node {
	n := a.node(id)
	if n.kind != k {
		panic(fmt.Errorf("%w: have %s, want %s", ErrKind, n.kind, k))
	}
	return n
}
