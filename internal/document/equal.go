package document

// Equal reports deep structural equality between two Values.
//
// Rules:
//   - Variants must match (a Number never equals a String, etc.).
//   - Numbers compare by mathematical value: integer, unsigned, and float
//     encodings of the same quantity are equal (4 == 4.0).
//   - Arrays compare by length and pairwise element equality, in order.
//   - Objects compare by key set and per-key value equality, independent of
//     insertion order.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && numberEqual(av, bv)
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			other, present := bv.Get(k)
			if !present {
				return false
			}
			mine, _ := av.Get(k)
			if !Equal(mine, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numberEqual compares two Numbers by mathematical value.
// Integer-to-integer comparisons are exact; once a float encoding is
// involved, both sides are compared as float64.
func numberEqual(a, b Number) bool {
	if a.IsFloat() || b.IsFloat() {
		return a.Float64() == b.Float64()
	}
	au, aok := a.Uint64()
	bu, bok := b.Uint64()
	if aok != bok {
		// One side is negative, the other is not.
		return false
	}
	if aok {
		return au == bu
	}
	ai, _ := a.Int64()
	bi, _ := b.Int64()
	return ai == bi
}
