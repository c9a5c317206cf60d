package bulletinv1

type GetBulletinRequest struct {
	User string `json:"user"`
}

func (x *GetBulletinRequest) GetUser() string {
	if x == nil {
		return ""
	}
	return x.User
}

type GetBulletinResponse struct {
	Owner        *Identity     `json:"owner"`
	Bulletin     *Bulletin     `json:"bulletin"`
	Repositories []*Repository `json:"repositories"`
	Unresolved   []int64       `json:"unresolved,omitempty"`
}

type ExportBulletinRequest struct {
	User string `json:"user"`
}

func (x *ExportBulletinRequest) GetUser() string {
	if x == nil {
		return ""
	}
	return x.User
}

type ExportBulletinResponse struct {
	Markdown string `json:"markdown"`
}

type OpenEditSessionRequest struct {
	User string `json:"user"`
	Edit bool   `json:"edit"`
}

func (x *OpenEditSessionRequest) GetUser() string {
	if x == nil {
		return ""
	}
	return x.User
}

func (x *OpenEditSessionRequest) GetEdit() bool {
	if x == nil {
		return false
	}
	return x.Edit
}

// SessionRequest addresses an edit session without further arguments.
type SessionRequest struct {
	SessionId string `json:"sessionID"`
}

func (x *SessionRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type GetEditStateRequest = SessionRequest
type DragEndRequest = SessionRequest
type AddSectionRequest = SessionRequest
type ApplyRepoPickerRequest = SessionRequest
type CloseRepoPickerRequest = SessionRequest
type SaveBulletinRequest = SessionRequest
type CancelEditRequest = SessionRequest

type EditStateResponse struct {
	State *EditState `json:"state"`
}

type DragStartRequest struct {
	SessionId string  `json:"sessionID"`
	Handle    *Handle `json:"handle"`
}

func (x *DragStartRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

func (x *DragStartRequest) GetHandle() *Handle {
	if x == nil {
		return nil
	}
	return x.Handle
}

type DragOverRequest struct {
	SessionId string  `json:"sessionID"`
	Target    *Handle `json:"target"`
}

func (x *DragOverRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

func (x *DragOverRequest) GetTarget() *Handle {
	if x == nil {
		return nil
	}
	return x.Target
}

type RenameSectionRequest struct {
	SessionId string `json:"sessionID"`
	SectionId string `json:"sectionID"`
	Name      string `json:"name"`
}

func (x *RenameSectionRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type RemoveSectionRequest struct {
	SessionId string `json:"sessionID"`
	SectionId string `json:"sectionID"`
	Confirm   bool   `json:"confirm"`
}

func (x *RemoveSectionRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type RemoveSectionResponse struct {
	State                *EditState `json:"state"`
	ConfirmationRequired bool       `json:"confirmationRequired"`
}

type RemoveRepoRequest struct {
	SessionId string `json:"sessionID"`
	SectionId string `json:"sectionID"`
	RefId     string `json:"refID"`
}

func (x *RemoveRepoRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type OpenRepoPickerRequest struct {
	SessionId string `json:"sessionID"`
	SectionId string `json:"sectionID"`
}

func (x *OpenRepoPickerRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type ToggleRepoRequest struct {
	SessionId string `json:"sessionID"`
	RepoId    int64  `json:"repoID"`
}

func (x *ToggleRepoRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type SearchReposRequest struct {
	SessionId string `json:"sessionID"`
	Query     string `json:"query"`
}

func (x *SearchReposRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type PickerResponse struct {
	Picker *Picker `json:"picker"`
}

type ImportMarkdownRequest struct {
	SessionId            string `json:"sessionID"`
	Markdown             string `json:"markdown"`
	StartSection         string `json:"startSection,omitempty"`
	EndSection           string `json:"endSection,omitempty"`
	SubsectionAsCategory bool   `json:"subsectionAsCategory,omitempty"`
}

func (x *ImportMarkdownRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

type PutBulletinRequest struct {
	Bulletin *Bulletin `json:"bulletin"`
}

func (x *PutBulletinRequest) GetBulletin() *Bulletin {
	if x == nil {
		return nil
	}
	return x.Bulletin
}

type PutBulletinResponse struct{}

type DeleteAccountRequest struct{}

type DeleteAccountResponse struct{}
