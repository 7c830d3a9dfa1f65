package host

import "sync"

// Element is anything that can be attached to a Document.
type Element interface {
	ElementID() string
}

// Document holds the elements currently attached to a window, in attach order.
type Document struct {
	mu       sync.Mutex
	children []Element
}

// AppendChild attaches e. Attaching an element that is already present is a no-op.
func (d *Document) AppendChild(e Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.children {
		if c.ElementID() == e.ElementID() {
			return
		}
	}
	d.children = append(d.children, e)
}

// RemoveChild detaches e and reports whether it was attached.
func (d *Document) RemoveChild(e Element) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.children {
		if c.ElementID() == e.ElementID() {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) Children() []Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Element, len(d.children))
	copy(out, d.children)
	return out
}

func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.children)
}
