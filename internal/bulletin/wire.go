package bulletin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	bulletinv1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ToWire converts a document to its persisted shape.
func ToWire(doc *Document) *bulletinv1.Bulletin {
	if doc == nil {
		return nil
	}
	out := &bulletinv1.Bulletin{Sections: make([]*bulletinv1.Section, 0, len(doc.Sections))}
	for _, s := range doc.Sections {
		ws := &bulletinv1.Section{Id: s.ID, Name: s.Name, Repos: make([]*bulletinv1.RepoRef, 0, len(s.Repos))}
		for _, r := range s.Repos {
			ws.Repos = append(ws.Repos, &bulletinv1.RepoRef{Id: r.ID, RepoId: r.RepoID})
		}
		out.Sections = append(out.Sections, ws)
	}
	return out
}

// FromWire converts a persisted bulletin into a document. Nil entries are skipped.
func FromWire(b *bulletinv1.Bulletin) *Document {
	if b == nil {
		return nil
	}
	doc := &Document{Sections: make([]Section, 0, len(b.GetSections()))}
	for _, ws := range b.GetSections() {
		if ws == nil {
			continue
		}
		s := Section{ID: ws.GetId(), Name: ws.GetName(), Repos: make([]RepoRef, 0, len(ws.GetRepos()))}
		for _, wr := range ws.GetRepos() {
			if wr == nil {
				continue
			}
			s.Repos = append(s.Repos, RepoRef{ID: wr.GetId(), RepoID: wr.GetRepoId()})
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// RepositoryToWire converts a catalog repository to its API shape.
func RepositoryToWire(r Repository) *bulletinv1.Repository {
	return &bulletinv1.Repository{
		Id:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		PrimaryLanguage: r.PrimaryLanguage,
		StarCount:       r.StarCount,
		ForkCount:       r.ForkCount,
		Url:             r.URL,
	}
}

// ValidateWire checks a bulletin before it is persisted. owned, when not nil,
// must resolve every referenced repository.
func ValidateWire(b *bulletinv1.Bulletin, owned RepoLookup) error {
	if b == nil {
		return fmt.Errorf("%w: no data", ErrInvalidBulletin)
	}
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidBulletin, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidBulletin, err)
	}
	sectionIDs := make(map[string]struct{}, len(b.Sections))
	refIDs := make(map[string]struct{})
	for _, s := range b.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: empty section name", ErrInvalidBulletin)
		}
		if len(s.Repos) == 0 {
			return fmt.Errorf("%w: section %q has no repositories", ErrInvalidBulletin, s.Id)
		}
		if _, dup := sectionIDs[s.Id]; dup {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidBulletin, s.Id)
		}
		sectionIDs[s.Id] = struct{}{}
		repoIDs := make(map[int64]struct{}, len(s.Repos))
		for _, r := range s.Repos {
			if r.RepoId <= 0 {
				return fmt.Errorf("%w: repository slot %q has no repository id", ErrInvalidBulletin, r.Id)
			}
			if _, dup := refIDs[r.Id]; dup {
				return fmt.Errorf("%w: duplicate repository slot id %q", ErrInvalidBulletin, r.Id)
			}
			refIDs[r.Id] = struct{}{}
			if _, dup := repoIDs[r.RepoId]; dup {
				return fmt.Errorf("%w: section %q lists repository %d twice", ErrInvalidBulletin, s.Id, r.RepoId)
			}
			repoIDs[r.RepoId] = struct{}{}
			if owned != nil {
				if _, ok := owned.Lookup(r.RepoId); !ok {
					return fmt.Errorf("%w: repository %d", ErrUnownedRepository, r.RepoId)
				}
			}
		}
	}
	return nil
}
