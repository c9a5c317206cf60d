package bulletin

// Model holds the working copy of a bulletin. Callers never mutate the working
// copy directly: Update hands the mutator a private draft and swaps the result
// in once the mutator returns, so every snapshot handed out stays immutable.
type Model struct {
	doc       *Document
	version   uint64
	listeners []func(*Document)
}

// NewModel returns a model with nothing loaded.
func NewModel() *Model { return &Model{} }

// Replace resets the working copy wholesale. A nil document unloads the model.
func (m *Model) Replace(doc *Document) {
	m.doc = doc.Clone()
	m.changed()
}

// Update applies fn to a draft of the working copy. When nothing is loaded fn
// is not called and the model stays unloaded.
func (m *Model) Update(fn func(draft *Document)) {
	if m.doc == nil {
		return
	}
	draft := m.doc.Clone()
	fn(draft)
	m.doc = draft
	m.changed()
}

// Loaded reports whether a working copy is present.
func (m *Model) Loaded() bool { return m.doc != nil }

// Snapshot returns a copy of the working copy, or nil when nothing is loaded.
func (m *Model) Snapshot() *Document { return m.doc.Clone() }

// Version increases on every Replace and Update.
func (m *Model) Version() uint64 { return m.version }

// OnChange registers fn to run synchronously after every change.
func (m *Model) OnChange(fn func(*Document)) {
	m.listeners = append(m.listeners, fn)
}

// view exposes the current working copy to package code that only reads it.
func (m *Model) view() *Document { return m.doc }

func (m *Model) changed() {
	m.version++
	for _, fn := range m.listeners {
		fn(m.doc)
	}
}
