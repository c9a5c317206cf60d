package encoding

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"repobulletin.shikanime.studio/internal/bulletin"
)

// options represents configuration options for parsing
type options struct {
	startSection         string
	endSection           string
	subsectionAsCategory bool
}

// Option is a function that configures options
type Option func(*options)

// WithStartSection skips every level 2 heading before the one containing section.
func WithStartSection(section string) Option {
	return func(o *options) {
		o.startSection = section
	}
}

// WithEndSection stops parsing at the level 2 heading containing section.
func WithEndSection(section string) Option {
	return func(o *options) {
		o.endSection = section
	}
}

// WithSubsectionAsCategory turns level 3 headings into sections of their own,
// named "{parent} - {subsection}".
func WithSubsectionAsCategory() Option {
	return func(o *options) {
		o.subsectionAsCategory = true
	}
}

// UnmarshalMarkdown parses an awesome-list style markdown document into a
// bulletin. Level 2 headings become sections and list item links become
// repository slots when they match a repository of repos, first by URL and
// then by name. Unmatched links, repeats inside a section and sections left
// without any repository are dropped.
func UnmarshalMarkdown(in []byte, repos *bulletin.Listing, opts ...Option) (*bulletin.Document, error) {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(in))
	m := newMatcher(repos)

	var section *bulletin.Section
	var currMainCat string
	foundStartSection := options.startSection == ""
	var sections []*bulletin.Section

	open := func(name string) {
		section = &bulletin.Section{ID: bulletin.NewID(), Name: name, Repos: []bulletin.RepoRef{}}
		sections = append(sections, section)
	}

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText, err := DecodeTextFromNode(n, in)
			if err != nil {
				return ast.WalkStop, fmt.Errorf("failed to decode heading text: %v", err)
			}
			headingText = strings.TrimSpace(headingText)

			if n.Level == 2 {
				if options.endSection != "" && foundStartSection && strings.Contains(headingText, options.endSection) {
					return ast.WalkStop, nil
				}
				if !foundStartSection && strings.Contains(headingText, options.startSection) {
					foundStartSection = true
				}
				if foundStartSection {
					currMainCat = headingText
					open(currMainCat)
				}
			} else if n.Level == 3 && options.subsectionAsCategory && foundStartSection && currMainCat != "" {
				open(currMainCat + " - " + headingText)
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if section == nil {
				return ast.WalkContinue, nil
			}
			link, err := decodeLinkFromListItem(n, in)
			if err != nil {
				return ast.WalkStop, err
			}
			if link == nil {
				return ast.WalkContinue, nil
			}
			if repo, ok := m.match(link.name, link.url); ok && section.RepoIndex(repo.ID) < 0 {
				section.Repos = append(section.Repos, bulletin.RepoRef{ID: bulletin.NewID(), RepoID: repo.ID})
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if !foundStartSection {
		return nil, fmt.Errorf("%s section not found in the document", options.startSection)
	}

	doc := &bulletin.Document{Sections: []bulletin.Section{}}
	for _, s := range sections {
		if len(s.Repos) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, *s)
	}
	return doc, nil
}

type link struct {
	name string
	url  string
}

// decodeLinkFromListItem returns the first link of a list item, or nil.
func decodeLinkFromListItem(listItem *ast.ListItem, src []byte) (*link, error) {
	var out *link
	err := ast.Walk(listItem, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		// Nested lists are walked on their own.
		if _, ok := node.(*ast.List); ok && node.Parent() == listItem {
			return ast.WalkSkipChildren, nil
		}
		n, ok := node.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		name, err := DecodeTextFromNode(n, src)
		if err != nil {
			return ast.WalkStop, fmt.Errorf("failed to decode project name: %v", err)
		}
		out = &link{name: strings.TrimSpace(name), url: string(n.Destination)}
		return ast.WalkStop, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// matcher resolves links against one owner's repositories.
type matcher struct {
	byURL  map[string]bulletin.Repository
	byName map[string]bulletin.Repository
}

func newMatcher(repos *bulletin.Listing) *matcher {
	m := &matcher{byURL: map[string]bulletin.Repository{}, byName: map[string]bulletin.Repository{}}
	if repos == nil {
		return m
	}
	for _, r := range repos.Repositories {
		if key := urlKey(r.URL); key != "" {
			m.byURL[key] = r
		}
		m.byName[strings.ToLower(r.Name)] = r
	}
	return m
}

func (m *matcher) match(name, dest string) (bulletin.Repository, bool) {
	if r, ok := m.byURL[urlKey(dest)]; ok {
		return r, true
	}
	if r, ok := m.byName[strings.ToLower(name)]; ok {
		return r, true
	}
	if u, err := url.Parse(dest); err == nil {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if r, ok := m.byName[strings.ToLower(strings.TrimSuffix(parts[len(parts)-1], ".git"))]; ok {
			return r, true
		}
	}
	return bulletin.Repository{}, false
}

// urlKey normalizes a repository URL to "host/owner/repo".
func urlKey(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	path := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	return strings.ToLower(u.Hostname() + "/" + path)
}

// DecodeTextFromNode extracts text content from an AST node
func DecodeTextFromNode(node ast.Node, src []byte) (string, error) {
	var text strings.Builder
	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if textNode, ok := n.(*ast.Text); ok {
				text.Write(textNode.Segment.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return text.String(), nil
}
