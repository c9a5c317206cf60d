package bulletin

import (
	"slices"
	"strings"
)

// Picker is the membership editor of one section: a provisional checklist of
// the owner's catalog that only reaches the document on Apply.
type Picker struct {
	sectionID string
	checked   []RepoRef
	query     string
	repos     *Listing
}

// PickerEntry is one catalog row with its provisional checked state.
type PickerEntry struct {
	Repository Repository
	Checked    bool
}

func newPicker(section *Section, repos *Listing) *Picker {
	p := &Picker{sectionID: section.ID, repos: repos}
	p.checked = slices.Clone(section.Repos)
	return p
}

func (p *Picker) SectionID() string { return p.sectionID }

func (p *Picker) Query() string { return p.query }

// Checked returns the provisional selection in selection order.
func (p *Picker) Checked() []RepoRef { return slices.Clone(p.checked) }

// IsChecked reports whether repoID is provisionally selected.
func (p *Picker) IsChecked(repoID int64) bool {
	return slices.ContainsFunc(p.checked, func(r RepoRef) bool { return r.RepoID == repoID })
}

// Toggle removes repoID from the selection when present, otherwise appends it
// under a fresh slot id.
func (p *Picker) Toggle(repoID int64) error {
	if i := slices.IndexFunc(p.checked, func(r RepoRef) bool { return r.RepoID == repoID }); i >= 0 {
		p.checked = slices.Delete(p.checked, i, i+1)
		return nil
	}
	if _, ok := p.repos.Lookup(repoID); !ok {
		return ErrUnknownRepository
	}
	p.checked = append(p.checked, RepoRef{ID: NewID(), RepoID: repoID})
	return nil
}

// Search sets the display filter. It never touches the selection.
func (p *Picker) Search(query string) { p.query = query }

// Entries returns the catalog rows matching the current query: a
// case-insensitive substring match against the repository name.
func (p *Picker) Entries() []PickerEntry {
	return p.filter(p.query)
}

func (p *Picker) filter(query string) []PickerEntry {
	if p.repos == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]PickerEntry, 0, p.repos.Len())
	for _, r := range p.repos.Repositories {
		if !strings.Contains(strings.ToLower(strings.TrimSpace(r.Name)), q) {
			continue
		}
		out = append(out, PickerEntry{Repository: r, Checked: p.IsChecked(r.ID)})
	}
	return out
}

// CanApply reports whether Apply would be accepted.
func (p *Picker) CanApply() bool { return len(p.checked) > 0 }

// forget drops repoID from the selection after it was removed from the section.
func (p *Picker) forget(repoID int64) {
	p.checked = slices.DeleteFunc(p.checked, func(r RepoRef) bool { return r.RepoID == repoID })
}

// apply returns the section refs resulting from the selection. Repositories
// already in the section keep their slot id.
func (p *Picker) apply(current []RepoRef) []RepoRef {
	existing := make(map[int64]string, len(current))
	for _, r := range current {
		existing[r.RepoID] = r.ID
	}
	out := make([]RepoRef, 0, len(p.checked))
	for _, r := range p.checked {
		if id, ok := existing[r.RepoID]; ok {
			r.ID = id
		}
		out = append(out, r)
	}
	return out
}
