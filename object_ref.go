package jsondom

import "iter"

// Member is one (key, value) pair of an object. Key always refers to a
// String node.
type Member struct {
	Key   ValueRef
	Value ValueRef
}

// ObjectRef is an ordered multimap view over a ValueRef known to be an
// object. Members keep insertion order; duplicate keys are allowed and
// lookups return the first match.
type ObjectRef struct {
	v ValueRef
}

func (or ObjectRef) Ref() ValueRef { return or.v }

func (or ObjectRef) Len() int      { return or.v.a.MemberLen(or.v.id) }
func (or ObjectRef) IsEmpty() bool { return or.Len() == 0 }

// Count reports 0 or 1: whether at least one member is named key. Duplicate
// keys beyond the first are not counted.
func (or ObjectRef) Count(key string) int {
	if or.Has(key) {
		return 1
	}
	return 0
}

// MemberAt returns the i-th member in insertion order; out of range panics.
func (or ObjectRef) MemberAt(i int) Member {
	k, v := or.v.a.MemberAt(or.v.id, i)
	return Member{
		Key:   ValueRef{a: or.v.a, id: k},
		Value: ValueRef{a: or.v.a, id: v},
	}
}

// Key returns the value for key, inserting a Null member when absent.
func (or ObjectRef) Key(key string) ValueRef {
	if id, ok := or.v.a.FindMember(or.v.id, key); ok {
		return ValueRef{a: or.v.a, id: id}
	}
	return or.InsertNull(key)
}

// Find returns the value of the first member named key without inserting.
func (or ObjectRef) Find(key string) (ValueRef, bool) {
	id, ok := or.v.a.FindMember(or.v.id, key)
	if !ok {
		return ValueRef{}, false
	}
	return ValueRef{a: or.v.a, id: id}, true
}

func (or ObjectRef) Has(key string) bool {
	_, ok := or.v.a.FindMember(or.v.id, key)
	return ok
}

// Insert appends a member with a converted copy of x, returning its value.
// It never replaces an existing member with the same key.
func (or ObjectRef) Insert(key string, x any) ValueRef {
	return or.InsertNull(key).Set(x)
}

// InsertNull appends a member with a Null value and returns it for in-place
// construction.
func (or ObjectRef) InsertNull(key string) ValueRef {
	return ValueRef{a: or.v.a, id: or.v.a.AddMember(or.v.id, key)}
}

// InsertView is Insert with a borrowed key: the caller guarantees key stays
// alive and unmodified for the lifetime of the member.
func (or ObjectRef) InsertView(key []byte, x any) ValueRef {
	return or.InsertNullView(key).Set(x)
}

// InsertNullView is InsertNull with a borrowed key.
func (or ObjectRef) InsertNullView(key []byte) ValueRef {
	return ValueRef{a: or.v.a, id: or.v.a.AddMemberView(or.v.id, key)}
}

// Erase removes the first member named key, reporting whether one was
// removed.
func (or ObjectRef) Erase(key string) bool {
	return or.v.a.EraseMember(or.v.id, key)
}

// EraseAt removes the i-th member.
func (or ObjectRef) EraseAt(i int) {
	or.v.a.EraseMembers(or.v.id, i, i+1)
}

// EraseRange removes members [i, j).
func (or ObjectRef) EraseRange(i, j int) {
	or.v.a.EraseMembers(or.v.id, i, j)
}

func (or ObjectRef) Clear() {
	or.v.a.Clear(or.v.id)
}

// Members iterates members in insertion order.
func (or ObjectRef) Members() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for i := 0; i < or.Len(); i++ {
			if !yield(or.MemberAt(i)) {
				return
			}
		}
	}
}

// FindAny returns the member of the first present key, trying keys in the
// order given. With duplicate keys the first matching member wins.
func (or ObjectRef) FindAny(keys ...string) (Member, bool) {
	for _, k := range keys {
		if i := or.v.a.MemberIndex(or.v.id, k); i >= 0 {
			return or.MemberAt(i), true
		}
	}
	return Member{}, false
}

// FindAll reports whether every key in keys names at least one member.
func (or ObjectRef) FindAll(keys ...string) bool {
	for _, k := range keys {
		if !or.Has(k) {
			return false
		}
	}
	return true
}

func (or ObjectRef) String() string {
	return or.v.String()
}

// GetMember looks key up and strictly converts the value: absent members and
// unrepresentable values both report false.
func GetMember[T Scalar](or ObjectRef, key string) (T, bool) {
	v, ok := or.Find(key)
	if !ok {
		var zero T
		return zero, false
	}
	return Get[T](v)
}

// GetMemberOr is GetMember with a fallback for the failing cases.
func GetMemberOr[T Scalar](or ObjectRef, key string, def T) T {
	x, ok := GetMember[T](or, key)
	if !ok {
		return def
	}
	return x
}
