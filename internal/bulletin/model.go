// Package bulletin implements the bulletin editing core: the document being
// edited, the repository catalog it references, the drag-reorder engine, the
// section membership editor, the save gate and the persistence bridge.
package bulletin

import (
	"slices"

	"github.com/google/uuid"
)

// DefaultSectionName is the name given to freshly created sections.
const DefaultSectionName = "New Section"

// Identity is a resolved GitHub account. Bulletins are keyed by ID, never by Login.
type Identity struct {
	ID        int64
	Login     string
	AvatarURL string
}

// Repository is a public repository of the bulletin owner, as fetched from GitHub.
type Repository struct {
	ID              int64
	Name            string
	Description     *string
	PrimaryLanguage *string
	StarCount       int
	ForkCount       int
	URL             string
}

// RepoRef is a slot in a section. ID identifies the slot and survives
// reordering; RepoID points at the catalog repository occupying it.
type RepoRef struct {
	ID     string
	RepoID int64
}

type Section struct {
	ID    string
	Name  string
	Repos []RepoRef
}

// Document is the section layout of a bulletin.
type Document struct {
	Sections []Section
}

// NewID returns a fresh opaque identifier for sections and repository slots.
func NewID() string { return uuid.NewString() }

// NewSection returns an empty section with the default name.
func NewSection() Section {
	return Section{ID: NewID(), Name: DefaultSectionName, Repos: []RepoRef{}}
}

// NewDocument returns the document used when a user has no persisted bulletin.
func NewDocument() *Document {
	return &Document{Sections: []Section{NewSection()}}
}

// WorkingCopy returns the initial working copy for a persisted snapshot.
func WorkingCopy(persisted *Document) *Document {
	if persisted == nil {
		return NewDocument()
	}
	return persisted.Clone()
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Sections: make([]Section, len(d.Sections))}
	for i := range d.Sections {
		out.Sections[i] = d.Sections[i].Clone()
	}
	return out
}

func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return slices.EqualFunc(d.Sections, o.Sections, func(a, b Section) bool { return a.Equal(b) })
}

// SectionIndex returns the position of the section with the given id, or -1.
func (d *Document) SectionIndex(id string) int {
	if d == nil {
		return -1
	}
	return slices.IndexFunc(d.Sections, func(s Section) bool { return s.ID == id })
}

// Section returns a pointer into the document for the section with the given id.
func (d *Document) Section(id string) *Section {
	i := d.SectionIndex(id)
	if i < 0 {
		return nil
	}
	return &d.Sections[i]
}

// RepoIDs returns every repository id referenced by the document, in order.
func (d *Document) RepoIDs() []int64 {
	if d == nil {
		return nil
	}
	var ids []int64
	for _, s := range d.Sections {
		for _, r := range s.Repos {
			ids = append(ids, r.RepoID)
		}
	}
	return ids
}

func (s Section) Clone() Section {
	out := s
	out.Repos = make([]RepoRef, len(s.Repos))
	copy(out.Repos, s.Repos)
	return out
}

func (s Section) Equal(o Section) bool {
	return s.ID == o.ID && s.Name == o.Name && slices.Equal(s.Repos, o.Repos)
}

// RefIndex returns the position of the slot with the given id, or -1.
func (s *Section) RefIndex(id string) int {
	return slices.IndexFunc(s.Repos, func(r RepoRef) bool { return r.ID == id })
}

// RepoIndex returns the position of the slot holding repoID, or -1.
func (s *Section) RepoIndex(repoID int64) int {
	return slices.IndexFunc(s.Repos, func(r RepoRef) bool { return r.RepoID == repoID })
}
