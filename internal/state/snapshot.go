package state

// Snapshot is one undoable canvas state: an ordered, immutable list of
// elements. Every method that changes the list returns a new Snapshot.
type Snapshot struct {
	elements []Element
}

// NewSnapshot copies elements into a new Snapshot.
func NewSnapshot(elements ...Element) Snapshot {
	if len(elements) == 0 {
		return Snapshot{}
	}
	return Snapshot{elements: append([]Element(nil), elements...)}
}

// Len returns the number of elements.
func (s Snapshot) Len() int { return len(s.elements) }

// At returns the i-th element in paint order.
func (s Snapshot) At(i int) Element { return s.elements[i] }

// Elements returns a copy of the element list.
func (s Snapshot) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// Find returns the element with the given id.
func (s Snapshot) Find(id string) (Element, bool) {
	for _, el := range s.elements {
		if el.Header().ID == id {
			return el, true
		}
	}
	return nil, false
}

// Append returns a snapshot with el painted on top.
func (s Snapshot) Append(el Element) Snapshot {
	next := make([]Element, len(s.elements), len(s.elements)+1)
	copy(next, s.elements)
	return Snapshot{elements: append(next, el)}
}

// Replace swaps the element carrying el's id for el, keeping its position.
// When no element has that id, el is appended.
func (s Snapshot) Replace(el Element) Snapshot {
	id := el.Header().ID
	for i, cur := range s.elements {
		if cur.Header().ID == id {
			next := s.Elements()
			next[i] = el
			return Snapshot{elements: next}
		}
	}
	return s.Append(el)
}

// Remove returns a snapshot without the element with the given id.
func (s Snapshot) Remove(id string) Snapshot {
	next := make([]Element, 0, len(s.elements))
	for _, el := range s.elements {
		if el.Header().ID != id {
			next = append(next, el)
		}
	}
	if len(next) == 0 {
		return Snapshot{}
	}
	return Snapshot{elements: next}
}
