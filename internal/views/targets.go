package views

// Targets is a set of named insertion points a view writes into. Writes to
// ids the set does not contain are dropped.
type Targets interface {
	Has(id string) bool
	Set(id, value string)
}

// MapTargets is a Targets backed by a map. Only ids present as keys accept
// writes.
type MapTargets map[string]string

// NewTargets returns a MapTargets containing the given ids, all empty.
func NewTargets(ids ...string) MapTargets {
	t := make(MapTargets, len(ids))
	for _, id := range ids {
		t[id] = ""
	}
	return t
}

func (t MapTargets) Has(id string) bool {
	_, ok := t[id]
	return ok
}

func (t MapTargets) Set(id, value string) {
	if _, ok := t[id]; ok {
		t[id] = value
	}
}

// Field is one named value written into a target.
type Field struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Fields is an ordered list of target writes.
type Fields []Field

// Apply writes every field whose target exists and returns how many were
// written.
func (f Fields) Apply(t Targets) int {
	n := 0
	for _, field := range f {
		if !t.Has(field.ID) {
			continue
		}
		t.Set(field.ID, field.Text)
		n++
	}
	return n
}

// Text returns the value written to id, or "" if the list has no such field.
func (f Fields) Text(id string) string {
	for _, field := range f {
		if field.ID == id {
			return field.Text
		}
	}
	return ""
}

// IDs returns the target ids in order.
func (f Fields) IDs() []string {
	ids := make([]string, len(f))
	for i, field := range f {
		ids[i] = field.ID
	}
	return ids
}

// Collect returns f with every value read back from t. Fields whose target
// t lacks come back empty.
func (f Fields) Collect(t MapTargets) Fields {
	out := make(Fields, len(f))
	for i, field := range f {
		out[i] = Field{ID: field.ID, Text: t[field.ID]}
	}
	return out
}

// Map returns the fields keyed by target id.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		m[field.ID] = field.Text
	}
	return m
}
