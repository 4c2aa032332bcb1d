package template

// Filter narrows a listing; zero values mean "no restriction".
type Filter struct {
	Status   Status
	Category string
}

// Store exposes template retrieval for the CLI views.
type Store interface {
	List(f Filter) []Template
	FindByID(id string) (Template, bool)
	Add(t Template)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Template
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied templates.
func NewMemoryStore(items []Template) *MemoryStore {
	return &MemoryStore{items: append([]Template(nil), items...)}
}

// List returns templates matching the filter, newest first ordering as seeded.
func (s *MemoryStore) List(f Filter) []Template {
	out := make([]Template, 0, len(s.items))
	for _, item := range s.items {
		if f.Status != "" && item.Status != f.Status {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FindByID looks up a template by identifier.
func (s *MemoryStore) FindByID(id string) (Template, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Template{}, false
}

// Add appends a newly created template to the catalog.
func (s *MemoryStore) Add(t Template) {
	s.items = append(s.items, t)
}
