package bulletin

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Session is one owner's edit of their bulletin. It owns the working copy,
// the drag engine, the membership editor and the save gate. Operations are
// serialized by the session mutex; Save releases it while the bridge call is
// in flight and refuses other mutations with ErrSaveInFlight meanwhile.
type Session struct {
	id      string
	owner   Identity
	repos   *Listing
	bridge  *Bridge
	confirm *ConfirmStatus

	mu        sync.Mutex
	model     *Model
	persisted *Document
	engine    *DragEngine
	picker    *Picker
	gate      Gate
	saving    bool
	editing   bool
}

// State is a point-in-time view of a session.
type State struct {
	ID                string
	Owner             Identity
	Document          *Document
	Catalog           *Listing
	Gate              Gate
	Active            *ActiveItem
	AnimationsEnabled bool
	Saving            bool
	Editing           bool
	Picker            *PickerState
}

// PickerState is the visible state of an open membership editor.
type PickerState struct {
	SectionID string
	Query     string
	Checked   []RepoRef
	Entries   []PickerEntry
	CanApply  bool
}

// NewSession starts editing page. confirm carries the viewer's removal
// confirmation across sessions; nil starts a fresh one.
func NewSession(page *Page, bridge *Bridge, confirm *ConfirmStatus) *Session {
	if confirm == nil {
		confirm = &ConfirmStatus{}
	}
	s := &Session{
		id:        NewID(),
		owner:     page.Owner,
		repos:     page.Catalog,
		bridge:    bridge,
		confirm:   confirm,
		model:     NewModel(),
		persisted: page.Persisted.Clone(),
		editing:   true,
	}
	s.engine = NewDragEngine(s.model, page.Catalog)
	s.model.OnChange(func(doc *Document) {
		s.gate = EvaluateGate(doc, s.saving)
	})
	s.model.Replace(WorkingCopy(page.Persisted))
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Owner() Identity { return s.owner }

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() State {
	st := State{
		ID:                s.id,
		Owner:             s.owner,
		Document:          s.model.Snapshot(),
		Catalog:           s.repos,
		Gate:              s.gate,
		AnimationsEnabled: s.engine.AnimationsEnabled(),
		Saving:            s.saving,
		Editing:           s.editing,
	}
	if a := s.engine.Active(); a != nil {
		ac := *a
		st.Active = &ac
	}
	if s.picker != nil {
		st.Picker = &PickerState{
			SectionID: s.picker.SectionID(),
			Query:     s.picker.Query(),
			Checked:   s.picker.Checked(),
			Entries:   s.picker.Entries(),
			CanApply:  s.picker.CanApply(),
		}
	}
	return st
}

// mutable reports why the working copy cannot be changed right now.
func (s *Session) mutable() error {
	if !s.editing {
		return ErrSessionClosed
	}
	if s.saving {
		return ErrSaveInFlight
	}
	if !s.model.Loaded() {
		return ErrNotLoaded
	}
	return nil
}

func (s *Session) setSaving(saving bool) {
	s.saving = saving
	s.gate = EvaluateGate(s.model.view(), saving)
}

// DragStart begins a drag gesture for h.
func (s *Session) DragStart(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.engine.Start(h)
	if s.engine.Active() == nil {
		slog.Debug("drag start on unresolved item", "session_id", s.id, "kind", h.Kind, "id", h.ID, "section_id", h.SectionID)
	}
	return nil
}

// DragOver reports whether hovering target reordered the document.
func (s *Session) DragOver(target *Handle) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	return s.engine.Over(target), nil
}

// DragEnd finishes the current gesture. It never fails: dropping is always
// allowed, even after the session stopped editing.
func (s *Session) DragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.End()
}

// AddSection appends an empty section and returns its id.
func (s *Session) AddSection() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return "", err
	}
	if !s.gate.CanAddSection {
		return "", ErrCannotAddSection
	}
	section := NewSection()
	s.model.Update(func(d *Document) {
		d.Sections = append(d.Sections, section)
	})
	return section.ID, nil
}

// RenameSection stores name verbatim; blank names are caught by the gate.
func (s *Session) RenameSection(sectionID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	if s.model.view().Section(sectionID) == nil {
		return ErrSectionNotFound
	}
	s.model.Update(func(d *Document) {
		d.Section(sectionID).Name = name
	})
	return nil
}

// RemoveSection deletes a section. Sections holding more than
// ConfirmRemovalThreshold repositories need confirm the first time.
func (s *Session) RemoveSection(sectionID string, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	section := s.model.view().Section(sectionID)
	if section == nil {
		return ErrSectionNotFound
	}
	if s.confirm.NeedsConfirmation(len(section.Repos)) {
		if !confirm {
			return ErrConfirmationRequired
		}
		s.confirm.Confirm()
	}
	s.model.Update(func(d *Document) {
		d.Sections = slices.DeleteFunc(d.Sections, func(sec Section) bool { return sec.ID == sectionID })
	})
	if s.picker != nil && s.picker.SectionID() == sectionID {
		s.picker = nil
	}
	return nil
}

// RemoveRepo removes one slot from a section.
func (s *Session) RemoveRepo(sectionID, refID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	section := s.model.view().Section(sectionID)
	if section == nil {
		return ErrSectionNotFound
	}
	i := section.RefIndex(refID)
	if i < 0 {
		return ErrRepoRefNotFound
	}
	repoID := section.Repos[i].RepoID
	s.model.Update(func(d *Document) {
		ds := d.Section(sectionID)
		ds.Repos = slices.Delete(ds.Repos, i, i+1)
	})
	if s.picker != nil && s.picker.SectionID() == sectionID {
		s.picker.forget(repoID)
	}
	return nil
}

// OpenPicker opens the membership editor on a section, seeded from the
// section's current slots. An open editor on any section is discarded.
func (s *Session) OpenPicker(sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	section := s.model.view().Section(sectionID)
	if section == nil {
		return ErrSectionNotFound
	}
	s.picker = newPicker(section, s.repos)
	return nil
}

func (s *Session) openPicker() (*Picker, error) {
	if err := s.mutable(); err != nil {
		return nil, err
	}
	if s.picker == nil {
		return nil, ErrPickerClosed
	}
	return s.picker, nil
}

func (s *Session) TogglePicker(repoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.openPicker()
	if err != nil {
		return err
	}
	return p.Toggle(repoID)
}

func (s *Session) SearchPicker(query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.openPicker()
	if err != nil {
		return err
	}
	p.Search(query)
	return nil
}

// ApplyPicker writes the provisional selection into the section and closes
// the editor. An empty selection is refused and leaves the editor open.
func (s *Session) ApplyPicker() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.openPicker()
	if err != nil {
		return err
	}
	if !p.CanApply() {
		return ErrEmptySelection
	}
	section := s.model.view().Section(p.SectionID())
	if section == nil {
		s.picker = nil
		return ErrSectionNotFound
	}
	refs := p.apply(section.Repos)
	s.model.Update(func(d *Document) {
		d.Section(p.SectionID()).Repos = refs
	})
	s.picker = nil
	return nil
}

// ClosePicker discards the provisional selection.
func (s *Session) ClosePicker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker = nil
}

// ReplaceSections overwrites the working copy's sections with doc's, as a
// single update.
func (s *Session) ReplaceSections(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	sections := doc.Clone().Sections
	s.model.Update(func(d *Document) {
		d.Sections = sections
	})
	s.picker = nil
	return nil
}

// Save persists the working copy. On success the persisted snapshot and the
// working copy both become the saved document and the session leaves edit
// mode. On failure the working copy is kept and Save can be retried.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if err := s.mutable(); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.gate.CanSave {
		s.mu.Unlock()
		return ErrCannotSave
	}
	doc := s.model.Snapshot()
	s.setSaving(true)
	s.mu.Unlock()

	err := s.bridge.Save(ctx, s.owner, doc, s.repos)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSaving(false)
	if err != nil {
		slog.WarnContext(ctx, "save failed; keeping edits", "session_id", s.id, "user_id", s.owner.ID, "error", err)
		return err
	}
	s.persisted = doc.Clone()
	s.model.Replace(doc)
	s.engine.End()
	s.picker = nil
	s.editing = false
	return nil
}

// Cancel discards the working copy in favor of the persisted snapshot and
// leaves edit mode.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return ErrSaveInFlight
	}
	if !s.editing {
		return ErrSessionClosed
	}
	s.model.Replace(WorkingCopy(s.persisted))
	s.engine.End()
	s.picker = nil
	s.editing = false
	return nil
}

// Editing reports whether the session still accepts edits.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}
