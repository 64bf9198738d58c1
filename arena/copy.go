package arena

// Copy deep-copies the subtree at srcID in src over the node dstID in dst,
// replacing whatever dstID held. String payloads become owned copies in dst,
// views included: the destination tree never borrows from the source.
//
// dst and src may be the same arena, but dstID must not lie inside the
// subtree of srcID.
func Copy(dst *Arena, dstID NodeID, src *Arena, srcID NodeID) {
	switch src.Kind(srcID) {
	case Null:
		dst.SetNull(dstID)
	case Bool:
		dst.SetBool(dstID, src.Bool(srcID))
	case Int:
		dst.SetInt(dstID, src.Int(srcID))
	case Uint:
		dst.SetUint(dstID, src.Uint(srcID))
	case Float:
		dst.SetFloat(dstID, src.Float(srcID))
	case String:
		dst.SetString(dstID, src.Str(srcID))
	case Array:
		n := src.Len(srcID)
		elems := make([]NodeID, n)
		for i := range n {
			elems[i] = src.Elem(srcID, i)
		}
		dst.SetArray(dstID)
		dst.Reserve(dstID, n)
		for _, e := range elems {
			Copy(dst, dst.Append(dstID), src, e)
		}
	case Object:
		n := src.MemberLen(srcID)
		keys := make([]string, n)
		vals := make([]NodeID, n)
		for i := range n {
			k, v := src.MemberAt(srcID, i)
			keys[i] = src.Str(k)
			vals[i] = v
		}
		dst.SetObject(dstID)
		for i := range n {
			Copy(dst, dst.AddMember(dstID, keys[i]), src, vals[i])
		}
	}
}

// Equal reports structural equality of two subtrees: same kinds, same
// string payloads, arrays element-wise, objects member-wise in order.
// Numbers compare by value across the Int/Uint/Float kinds.
func Equal(a *Arena, x NodeID, b *Arena, y NodeID) bool {
	ka, kb := a.Kind(x), b.Kind(y)
	if ka.IsNumber() && kb.IsNumber() {
		return numEqual(a, x, b, y)
	}
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Bool:
		return a.Bool(x) == b.Bool(y)
	case String:
		return string(a.StrBytes(x)) == string(b.StrBytes(y))
	case Array:
		n := a.Len(x)
		if n != b.Len(y) {
			return false
		}
		for i := range n {
			if !Equal(a, a.Elem(x, i), b, b.Elem(y, i)) {
				return false
			}
		}
		return true
	case Object:
		n := a.MemberLen(x)
		if n != b.MemberLen(y) {
			return false
		}
		for i := range n {
			ak, av := a.MemberAt(x, i)
			bk, bv := b.MemberAt(y, i)
			if string(a.StrBytes(ak)) != string(b.StrBytes(bk)) {
				return false
			}
			if !Equal(a, av, b, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func numEqual(a *Arena, x NodeID, b *Arena, y NodeID) bool {
	ka, kb := a.Kind(x), b.Kind(y)
	if ka == Float || kb == Float {
		return numFloat(a, x) == numFloat(b, y)
	}
	switch {
	case ka == Int && kb == Int:
		return a.Int(x) == b.Int(y)
	case ka == Uint && kb == Uint:
		return a.Uint(x) == b.Uint(y)
	case ka == Int && kb == Uint:
		i := a.Int(x)
		return i >= 0 && uint64(i) == b.Uint(y)
	default:
		i := b.Int(y)
		return i >= 0 && uint64(i) == a.Uint(x)
	}
}

func numFloat(a *Arena, id NodeID) float64 {
	switch a.Kind(id) {
	case Int:
		return float64(a.Int(id))
	case Uint:
		return float64(a.Uint(id))
	default:
		return a.Float(id)
	}
}
