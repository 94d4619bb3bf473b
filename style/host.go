package style

import "github.com/fynestrap/fynestrap/render"

// Options are the configure key/values of a style record (foreground,
// background, font, padding and whatever else the host engine accepts).
type Options map[string]any

// StateSpec pairs a state expression with the option values that apply
// while it holds. Order is significant: first match wins.
type StateSpec struct {
	When    string
	Options Options
}

// LayoutNode is one node of a style's child-element layout tree.
type LayoutNode struct {
	Element  string
	Side     string
	Sticky   string
	Expand   bool
	Children []*LayoutNode
}

// HostEngine is the native style/layout engine the builders register their
// artifacts with. It is consumed, never implemented, by builder code;
// RecordStore is the in-process implementation.
type HostEngine interface {
	// StyleExists reports whether a generated style name is already
	// registered. The resolver's idempotence guarantee rests on it.
	StyleExists(name string) bool
	ConfigureStyle(name string, opts Options)
	MapStyle(name string, specs []StateSpec)
	CreateLayout(name string, tree *LayoutNode)
	CreateImagePrimitive(spec render.ElementSpec)
	// Reset drops every registered record, returning the engine to its
	// clean base state. Called on theme switch so widgets rebuild instead
	// of keeping stale colors.
	Reset()
}

// Record is one generated style artifact: the configure options, ordered
// state-conditional overrides, optional layout tree, and the names of the
// image elements it owns. Records are superseded (via Reset), never
// mutated.
type Record struct {
	Name      string
	Configure Options
	Map       []StateSpec
	Layout    *LayoutNode
}

// RecordStore is the in-memory HostEngine. It holds the generated style
// records and element image specs for inspection by adapters (the Fyne
// theme, tests, the demo app).
type RecordStore struct {
	records      map[string]*Record
	elements     map[string]render.ElementSpec
	imageCreates int
}

// NewRecordStore returns an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records:  make(map[string]*Record),
		elements: make(map[string]render.ElementSpec),
	}
}

func (s *RecordStore) record(name string) *Record {
	r, ok := s.records[name]
	if !ok {
		r = &Record{Name: name}
		s.records[name] = r
	}
	return r
}

// StyleExists implements HostEngine.
func (s *RecordStore) StyleExists(name string) bool {
	_, ok := s.records[name]
	return ok
}

// ConfigureStyle merges configure options into the named record, creating
// it if needed.
func (s *RecordStore) ConfigureStyle(name string, opts Options) {
	r := s.record(name)
	if r.Configure == nil {
		r.Configure = make(Options, len(opts))
	}
	for k, v := range opts {
		r.Configure[k] = v
	}
}

// MapStyle appends state-conditional overrides, preserving declaration
// order.
func (s *RecordStore) MapStyle(name string, specs []StateSpec) {
	r := s.record(name)
	r.Map = append(r.Map, specs...)
}

// CreateLayout attaches the layout tree to the named record.
func (s *RecordStore) CreateLayout(name string, tree *LayoutNode) {
	s.record(name).Layout = tree
}

// CreateImagePrimitive registers an element image spec. Re-registering a
// name that already exists is ignored; image primitives are created at
// most once per distinct key.
func (s *RecordStore) CreateImagePrimitive(spec render.ElementSpec) {
	if _, exists := s.elements[spec.Name]; exists {
		return
	}
	s.elements[spec.Name] = spec
	s.imageCreates++
}

// ImageCreates reports how many image primitives have been created since
// the last Reset. Instrumentation for the idempotence contract.
func (s *RecordStore) ImageCreates() int { return s.imageCreates }

// Lookup returns the record registered under name.
func (s *RecordStore) Lookup(name string) (*Record, bool) {
	r, ok := s.records[name]
	return r, ok
}

// Element returns the image element spec registered under name.
func (s *RecordStore) Element(name string) (render.ElementSpec, bool) {
	e, ok := s.elements[name]
	return e, ok
}

// Len reports the number of live records.
func (s *RecordStore) Len() int { return len(s.records) }

// Reset implements HostEngine: all records and elements are dropped.
func (s *RecordStore) Reset() {
	s.records = make(map[string]*Record)
	s.elements = make(map[string]render.ElementSpec)
	s.imageCreates = 0
}
