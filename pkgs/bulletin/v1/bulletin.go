// Package bulletinv1 holds the JSON messages exchanged by the bulletin service
// and persisted by the bulletin store.
package bulletinv1

// Bulletin is the persisted layout of a user's page.
type Bulletin struct {
	Sections []*Section `json:"sections" validate:"required,min=1,dive,required"`
}

func (x *Bulletin) GetSections() []*Section {
	if x == nil {
		return nil
	}
	return x.Sections
}

// Section is a named, ordered group of repository references.
type Section struct {
	Id    string     `json:"id" validate:"required"`
	Name  string     `json:"name"`
	Repos []*RepoRef `json:"repos" validate:"required,min=1,dive,required"`
}

func (x *Section) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Section) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Section) GetRepos() []*RepoRef {
	if x == nil {
		return nil
	}
	return x.Repos
}

// RepoRef is a slot inside a section pointing at a repository by id.
type RepoRef struct {
	Id     string `json:"id" validate:"required"`
	RepoId int64  `json:"repoID" validate:"required,gt=0"`
}

func (x *RepoRef) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *RepoRef) GetRepoId() int64 {
	if x == nil {
		return 0
	}
	return x.RepoId
}

// Repository is a public GitHub repository as shown on a bulletin.
type Repository struct {
	Id              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	PrimaryLanguage *string `json:"primaryLanguage"`
	StarCount       int     `json:"starCount"`
	ForkCount       int     `json:"forkCount"`
	Url             string  `json:"url"`
}

// Identity is a resolved GitHub account.
type Identity struct {
	Id        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarUrl string `json:"avatarURL"`
}

// Handle identifies the item grabbed or hovered during a drag gesture.
type Handle struct {
	Kind      string `json:"kind"`
	Id        string `json:"id"`
	SectionId string `json:"sectionID,omitempty"`
}

func (x *Handle) GetKind() string {
	if x == nil {
		return ""
	}
	return x.Kind
}

// ActiveItem is the drag preview of the gesture in progress.
type ActiveItem struct {
	Kind       string      `json:"kind"`
	Section    *Section    `json:"section,omitempty"`
	Repository *Repository `json:"repository,omitempty"`
}

// Gate reports whether the working copy may be saved.
type Gate struct {
	HasBlankSectionName bool   `json:"hasBlankSectionName"`
	HasEmptySection     bool   `json:"hasEmptySection"`
	CanAddSection       bool   `json:"canAddSection"`
	CanSave             bool   `json:"canSave"`
	Warning             string `json:"warning,omitempty"`
}

// PickerEntry is one catalog row in the membership editor.
type PickerEntry struct {
	Repository *Repository `json:"repository"`
	Checked    bool        `json:"checked"`
}

// Picker is the open membership editor of an edit session.
type Picker struct {
	SectionId string         `json:"sectionID"`
	Query     string         `json:"query"`
	Checked   []*RepoRef     `json:"checked"`
	Entries   []*PickerEntry `json:"entries"`
	CanApply  bool           `json:"canApply"`
}

// EditState is the full observable state of an edit session.
type EditState struct {
	SessionId         string        `json:"sessionID"`
	Owner             *Identity     `json:"owner"`
	Bulletin          *Bulletin     `json:"bulletin"`
	Repositories      []*Repository `json:"repositories"`
	Gate              *Gate         `json:"gate"`
	Active            *ActiveItem   `json:"active,omitempty"`
	AnimationsEnabled bool          `json:"animationsEnabled"`
	Saving            bool          `json:"saving"`
	Editing           bool          `json:"editing"`
	Picker            *Picker       `json:"picker,omitempty"`
}
