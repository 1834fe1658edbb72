// Package lifetime gives Go code the two lifetimes a destructor-based language
// has built in: automatic (bound to a block) and dynamic (ended by an explicit
// release).
package lifetime

// Destroyer is anything whose lifetime ends with a call to Destroy.
type Destroyer interface {
	Destroy()
}

// ---------- 1. Automatic duration ----------

// Scope collects objects whose lifetime ends with the enclosing Block.
type Scope struct {
	owned []Destroyer
}

// Block runs body and then destroys everything registered on the scope, last
// registered first. The cleanup is deferred, so it also runs if body panics.
func Block(body func(s *Scope)) {
	s := &Scope{}
	defer s.close()
	body(s)
}

// Auto registers d with the scope and returns it.
func (s *Scope) Auto(d Destroyer) Destroyer {
	s.owned = append(s.owned, d)
	return d
}

// AutoArray registers every element of elems, in index order, so the block
// destroys them in reverse construction order.
func AutoArray[T Destroyer](s *Scope, elems []T) []T {
	for _, e := range elems {
		s.owned = append(s.owned, e)
	}
	return elems
}

func (s *Scope) close() {
	for i := len(s.owned) - 1; i >= 0; i-- {
		s.owned[i].Destroy()
	}
	s.owned = nil
}

// ---------- 2. Dynamic duration ----------

// Delete destroys the object *p refers to and clears *p so the reference
// cannot be used again. A nil reference is left alone.
func Delete[T interface {
	comparable
	Destroyer
}](p *T) {
	var zero T
	if *p == zero {
		return
	}
	(*p).Destroy()
	*p = zero
}

// DeleteArray destroys every element of *p, last element first, and then
// clears *p.
func DeleteArray[T Destroyer](p *[]T) {
	arr := *p
	for i := len(arr) - 1; i >= 0; i-- {
		arr[i].Destroy()
	}
	*p = nil
}
