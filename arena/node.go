package arena

import "fmt"

// Readers. All of them panic with ErrStale on a stale id; the typed payload
// readers additionally panic with ErrKind when the node holds another kind.

func (a *Arena) Kind(id NodeID) Kind {
	return a.node(id).kind
}

func (a *Arena) Bool(id NodeID) bool {
	return a.checkKind(id, Bool).b
}

func (a *Arena) Int(id NodeID) int64 {
	return a.checkKind(id, Int).i
}

func (a *Arena) Uint(id NodeID) uint64 {
	return a.checkKind(id, Uint).u
}

func (a *Arena) Float(id NodeID) float64 {
	return a.checkKind(id, Float).f
}

// Str returns a copy of the string payload.
func (a *Arena) Str(id NodeID) string {
	return string(a.checkKind(id, String).str)
}

// StrBytes returns the string payload without copying. Callers must not
// modify the result.
func (a *Arena) StrBytes(id NodeID) []byte {
	return a.checkKind(id, String).str
}

func (a *Arena) StrLen(id NodeID) int {
	return len(a.checkKind(id, String).str)
}

// Writers. Setting a scalar over a container releases the container's
// children, staling any NodeIDs into them.

func (a *Arena) set(id NodeID, n node) {
	p := a.node(id)
	a.releaseChildren(p)
	*p = n
}

func (a *Arena) SetNull(id NodeID) {
	a.set(id, node{kind: Null})
}

func (a *Arena) SetBool(id NodeID, v bool) {
	a.set(id, node{kind: Bool, b: v})
}

func (a *Arena) SetInt(id NodeID, v int64) {
	a.set(id, node{kind: Int, i: v})
}

func (a *Arena) SetUint(id NodeID, v uint64) {
	a.set(id, node{kind: Uint, u: v})
}

func (a *Arena) SetFloat(id NodeID, v float64) {
	a.set(id, node{kind: Float, f: v})
}

// SetString stores a copy of s in arena-owned storage.
func (a *Arena) SetString(id NodeID, s string) {
	a.set(id, node{kind: String, str: a.copyBytes([]byte(s))})
}

// SetStringView stores b without copying. The caller guarantees b outlives
// the tree and is not modified while the node is alive.
func (a *Arena) SetStringView(id NodeID, b []byte) {
	a.set(id, node{kind: String, str: b})
}

func (a *Arena) SetArray(id NodeID) {
	a.set(id, node{kind: Array})
}

func (a *Arena) SetObject(id NodeID) {
	a.set(id, node{kind: Object})
}

// Array operations.

func (a *Arena) Len(id NodeID) int {
	return len(a.checkKind(id, Array).elems)
}

func (a *Arena) Cap(id NodeID) int {
	return cap(a.checkKind(id, Array).elems)
}

func (a *Arena) Reserve(id NodeID, n int) {
	p := a.checkKind(id, Array)
	if n <= cap(p.elems) {
		return
	}
	elems := make([]NodeID, len(p.elems), n)
	copy(elems, p.elems)
	p.elems = elems
}

func (a *Arena) Elem(id NodeID, i int) NodeID {
	p := a.checkKind(id, Array)
	if i < 0 || i >= len(p.elems) {
		panic(fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(p.elems)))
	}
	return p.elems[i]
}

// Append adds a Null element at the back and returns its id.
func (a *Arena) Append(id NodeID) NodeID {
	a.checkKind(id, Array)
	c := a.alloc()
	p := a.node(id)
	p.elems = append(p.elems, c)
	return c
}

// PopBack removes the last element. It is a no-op on an empty array.
func (a *Arena) PopBack(id NodeID) {
	p := a.checkKind(id, Array)
	n := len(p.elems)
	if n == 0 {
		return
	}
	last := p.elems[n-1]
	p.elems = p.elems[:n-1]
	a.release(last)
}

// EraseElems removes elements [i, j), releasing their slots. Ids of
// elements at or after i become stale or shift position.
func (a *Arena) EraseElems(id NodeID, i, j int) {
	p := a.checkKind(id, Array)
	n := len(p.elems)
	if i < 0 || j < i || j > n {
		panic(fmt.Errorf("%w: [%d,%d) of %d", ErrOutOfRange, i, j, n))
	}
	removed := make([]NodeID, j-i)
	copy(removed, p.elems[i:j])
	p.elems = append(p.elems[:i], p.elems[j:]...)
	for _, r := range removed {
		a.release(r)
	}
}

// Clear removes all children of an Array or Object node.
func (a *Arena) Clear(id NodeID) {
	p := a.node(id)
	switch p.kind {
	case Array, Object:
		a.releaseChildren(p)
	default:
		panic(fmt.Errorf("%w: Clear on %s", ErrKind, p.kind))
	}
}

// Object operations. Members are ordered (key, value) pairs; keys are String
// nodes; duplicate keys are allowed and lookups return the first match.

func (a *Arena) MemberLen(id NodeID) int {
	return len(a.checkKind(id, Object).members)
}

func (a *Arena) MemberAt(id NodeID, i int) (key, val NodeID) {
	p := a.checkKind(id, Object)
	if i < 0 || i >= len(p.members) {
		panic(fmt.Errorf("%w: member %d of %d", ErrOutOfRange, i, len(p.members)))
	}
	m := p.members[i]
	return m.key, m.val
}

// AddMember appends a member with a copied key and a Null value, returning
// the value's id. It never checks for an existing member with the same key.
func (a *Arena) AddMember(id NodeID, key string) NodeID {
	a.checkKind(id, Object)
	k := a.alloc()
	a.node(k).kind = String
	a.node(k).str = a.copyBytes([]byte(key))
	v := a.alloc()
	p := a.node(id)
	p.members = append(p.members, member{key: k, val: v})
	return v
}

// AddMemberView is AddMember with a borrowed key: the caller guarantees key
// outlives the tree.
func (a *Arena) AddMemberView(id NodeID, key []byte) NodeID {
	a.checkKind(id, Object)
	k := a.alloc()
	a.node(k).kind = String
	a.node(k).str = key
	v := a.alloc()
	p := a.node(id)
	p.members = append(p.members, member{key: k, val: v})
	return v
}

// MemberIndex returns the position of the first member named key, or -1.
func (a *Arena) MemberIndex(id NodeID, key string) int {
	p := a.checkKind(id, Object)
	for i, m := range p.members {
		if string(a.node(m.key).str) == key {
			return i
		}
	}
	return -1
}

// FindMember returns the value id of the first member named key.
func (a *Arena) FindMember(id NodeID, key string) (NodeID, bool) {
	i := a.MemberIndex(id, key)
	if i < 0 {
		return NodeID{}, false
	}
	return a.node(id).members[i].val, true
}

// EraseMember removes the first member named key, reporting whether one was
// removed.
func (a *Arena) EraseMember(id NodeID, key string) bool {
	i := a.MemberIndex(id, key)
	if i < 0 {
		return false
	}
	a.EraseMembers(id, i, i+1)
	return true
}

// EraseMembers removes members [i, j), releasing the key and value slots.
func (a *Arena) EraseMembers(id NodeID, i, j int) {
	p := a.checkKind(id, Object)
	n := len(p.members)
	if i < 0 || j < i || j > n {
		panic(fmt.Errorf("%w: members [%d,%d) of %d", ErrOutOfRange, i, j, n))
	}
	removed := make([]member, j-i)
	copy(removed, p.members[i:j])
	p.members = append(p.members[:i], p.members[j:]...)
	for _, m := range removed {
		a.release(m.key)
		a.release(m.val)
	}
}
