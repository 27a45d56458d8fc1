package char

// Not returns the negation of p. Negating a negation hands back the
// original predicate, so a Not never wraps another Not.
func (p Predicate) Not() Predicate {
	if p.kind == kindNot {
		return p.members[0]
	}
	return Predicate{kind: kindNot, members: []Predicate{p}}
}

// Or returns the union of p and others: true for a rune as soon as one
// member matches, members tested in the given order. The member lists of
// the receiver and of every union argument are spliced in flat, so the
// result never nests another union. Called without arguments it returns p
// unchanged.
func (p Predicate) Or(others ...Predicate) Predicate {
	if len(others) == 0 {
		return p
	}
	n := flatLen(p)
	for _, q := range others {
		n += flatLen(q)
	}
	members := make([]Predicate, 0, n)
	members = appendFlat(members, p)
	for _, q := range others {
		members = appendFlat(members, q)
	}
	return Predicate{kind: kindOr, members: members}
}

// flatLen counts the members p contributes to a union.
func flatLen(p Predicate) int {
	if p.kind == kindOr {
		return len(p.members)
	}
	return 1
}

// appendFlat appends p's union members to dst, or p itself when it is not
// a union.
func appendFlat(dst []Predicate, p Predicate) []Predicate {
	if p.kind == kindOr {
		return append(dst, p.members...)
	}
	return append(dst, p)
}
