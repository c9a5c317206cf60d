package bulletin

// Kind tags the item carried by a drag gesture.
type Kind string

const (
	KindSection Kind = "SECTION"
	KindRepo    Kind = "REPO"
)

func (k Kind) Valid() bool { return k == KindSection || k == KindRepo }

// Handle is the payload attached to a draggable or droppable item. For
// KindSection, ID is the section id. For KindRepo, ID is the RepoRef id and
// SectionID the section holding it.
type Handle struct {
	Kind      Kind
	ID        string
	SectionID string
}

// ActiveItem is the resolved item being dragged, used for the drag preview.
type ActiveItem struct {
	Kind       Kind
	Section    *Section
	Repository *Repository
}

type gesture struct {
	handle Handle
	inert  bool
}

// DragEngine turns drag gestures into document mutations. Hovering an item of
// the same kind swaps the two items in place; repositories only swap within
// the section they were picked up from.
type DragEngine struct {
	model      *Model
	repos      RepoLookup
	active     *ActiveItem
	g          *gesture
	animations bool
}

func NewDragEngine(model *Model, repos RepoLookup) *DragEngine {
	return &DragEngine{model: model, repos: repos, animations: true}
}

// Dragging reports whether a gesture is in progress.
func (e *DragEngine) Dragging() bool { return e.g != nil }

// Active returns the drag preview item, or nil.
func (e *DragEngine) Active() *ActiveItem { return e.active }

// AnimationsEnabled reports whether list enter/exit animations should run.
// They are off for the whole gesture so they do not race the swaps.
func (e *DragEngine) AnimationsEnabled() bool { return e.animations }

// Start begins a gesture. If the handle cannot be resolved against the
// document or the catalog the gesture is inert: no preview, no mutations.
func (e *DragEngine) Start(h Handle) {
	e.animations = false
	e.g = &gesture{handle: h}
	e.active = e.resolve(h)
	if e.active == nil {
		e.g.inert = true
	}
}

func (e *DragEngine) resolve(h Handle) *ActiveItem {
	doc := e.model.view()
	if doc == nil {
		return nil
	}
	switch h.Kind {
	case KindSection:
		s := doc.Section(h.ID)
		if s == nil {
			return nil
		}
		sc := s.Clone()
		return &ActiveItem{Kind: KindSection, Section: &sc}
	case KindRepo:
		s := doc.Section(h.SectionID)
		if s == nil {
			return nil
		}
		i := s.RefIndex(h.ID)
		if i < 0 || e.repos == nil {
			return nil
		}
		repo, ok := e.repos.Lookup(s.Repos[i].RepoID)
		if !ok {
			return nil
		}
		return &ActiveItem{Kind: KindRepo, Repository: &repo}
	}
	return nil
}

// Over handles the pointer moving over target. It returns true when the
// document changed.
func (e *DragEngine) Over(target *Handle) bool {
	if e.g == nil || e.g.inert || target == nil {
		return false
	}
	active := e.g.handle
	if active.Kind != target.Kind {
		return false
	}
	switch active.Kind {
	case KindSection:
		return e.swapSections(active.ID, target.ID)
	case KindRepo:
		if active.SectionID != target.SectionID {
			return false
		}
		return e.swapRepos(active.SectionID, active.ID, target.ID)
	}
	return false
}

func (e *DragEngine) swapSections(activeID, overID string) bool {
	doc := e.model.view()
	i, j := doc.SectionIndex(activeID), doc.SectionIndex(overID)
	if i < 0 || j < 0 || i == j {
		return false
	}
	e.model.Update(func(d *Document) {
		d.Sections = Swap(d.Sections, i, j)
	})
	return true
}

func (e *DragEngine) swapRepos(sectionID, activeID, overID string) bool {
	doc := e.model.view()
	s := doc.Section(sectionID)
	if s == nil {
		return false
	}
	i, j := s.RefIndex(activeID), s.RefIndex(overID)
	if i < 0 || j < 0 || i == j {
		return false
	}
	e.model.Update(func(d *Document) {
		ds := d.Section(sectionID)
		ds.Repos = Swap(ds.Repos, i, j)
	})
	return true
}

// End finishes the gesture whether or not it ended over a valid target.
// Swaps applied while hovering are final.
func (e *DragEngine) End() {
	e.animations = true
	e.active = nil
	e.g = nil
}
