package loader

// Document is a parsed object whose members keep the order they were
// declared in. Go maps would shuffle keys, and rendered output must follow
// the source text, so objects decode into this slice shape instead.
type Document []Member

// Member is a single key/value entry of a Document.
type Member struct {
	Key   string
	Value any
}

// Get returns the value of the named member and whether it exists. Duplicate
// keys are possible in hand-written documents; the first occurrence wins.
func (d Document) Get(key string) (any, bool) {
	for _, m := range d {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in declaration order.
func (d Document) Keys() []string {
	out := make([]string, 0, len(d))
	for _, m := range d {
		out = append(out, m.Key)
	}
	return out
}
