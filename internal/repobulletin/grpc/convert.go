package grpc

import (
	"repobulletin.shikanime.studio/internal/bulletin"
	bulletinv1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
)

func identityToWire(id bulletin.Identity) *bulletinv1.Identity {
	return &bulletinv1.Identity{Id: id.ID, Login: id.Login, AvatarUrl: id.AvatarURL}
}

func handleFromWire(h *bulletinv1.Handle) bulletin.Handle {
	if h == nil {
		return bulletin.Handle{}
	}
	return bulletin.Handle{Kind: bulletin.Kind(h.Kind), ID: h.Id, SectionID: h.SectionId}
}

func catalogToWire(l *bulletin.Listing) []*bulletinv1.Repository {
	out := make([]*bulletinv1.Repository, 0, l.Len())
	if l == nil {
		return out
	}
	for _, r := range l.Repositories {
		out = append(out, bulletin.RepositoryToWire(r))
	}
	return out
}

// referencedToWire returns the repositories doc points at, once each, in
// document order.
func referencedToWire(doc *bulletin.Document, repos bulletin.RepoLookup) []*bulletinv1.Repository {
	seen := map[int64]struct{}{}
	out := []*bulletinv1.Repository{}
	for _, id := range doc.RepoIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if r, ok := repos.Lookup(id); ok {
			out = append(out, bulletin.RepositoryToWire(r))
		}
	}
	return out
}

func gateToWire(g bulletin.Gate) *bulletinv1.Gate {
	return &bulletinv1.Gate{
		HasBlankSectionName: g.HasBlankSectionName,
		HasEmptySection:     g.HasEmptySection,
		CanAddSection:       g.CanAddSection,
		CanSave:             g.CanSave,
		Warning:             g.Warning(),
	}
}

func activeToWire(a *bulletin.ActiveItem) *bulletinv1.ActiveItem {
	if a == nil {
		return nil
	}
	out := &bulletinv1.ActiveItem{Kind: string(a.Kind)}
	if a.Section != nil {
		out.Section = bulletin.ToWire(&bulletin.Document{Sections: []bulletin.Section{*a.Section}}).Sections[0]
	}
	if a.Repository != nil {
		out.Repository = bulletin.RepositoryToWire(*a.Repository)
	}
	return out
}

func pickerToWire(p *bulletin.PickerState) *bulletinv1.Picker {
	if p == nil {
		return nil
	}
	out := &bulletinv1.Picker{
		SectionId: p.SectionID,
		Query:     p.Query,
		Checked:   make([]*bulletinv1.RepoRef, 0, len(p.Checked)),
		Entries:   make([]*bulletinv1.PickerEntry, 0, len(p.Entries)),
		CanApply:  p.CanApply,
	}
	for _, r := range p.Checked {
		out.Checked = append(out.Checked, &bulletinv1.RepoRef{Id: r.ID, RepoId: r.RepoID})
	}
	for _, e := range p.Entries {
		out.Entries = append(out.Entries, &bulletinv1.PickerEntry{
			Repository: bulletin.RepositoryToWire(e.Repository),
			Checked:    e.Checked,
		})
	}
	return out
}

func stateToWire(st bulletin.State) *bulletinv1.EditState {
	return &bulletinv1.EditState{
		SessionId:         st.ID,
		Owner:             identityToWire(st.Owner),
		Bulletin:          bulletin.ToWire(st.Document),
		Repositories:      catalogToWire(st.Catalog),
		Gate:              gateToWire(st.Gate),
		Active:            activeToWire(st.Active),
		AnimationsEnabled: st.AnimationsEnabled,
		Saving:            st.Saving,
		Editing:           st.Editing,
		Picker:            pickerToWire(st.Picker),
	}
}
