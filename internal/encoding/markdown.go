package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"repobulletin.shikanime.studio/internal/bulletin"
)

// MarshalMarkdown writes doc as markdown: a title, one level 2 heading per
// section and one list item per resolved repository. Slots repos cannot
// resolve are skipped.
func MarshalMarkdown(owner bulletin.Identity, doc *bulletin.Document, repos bulletin.RepoLookup) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s's bulletin\n", owner.Login)
	if doc == nil || len(doc.Sections) == 0 {
		b.WriteString("\nNothing pinned yet.\n")
		return b.Bytes()
	}
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", strings.TrimSpace(s.Name))
		for _, ref := range s.Repos {
			repo, ok := repos.Lookup(ref.RepoID)
			if !ok {
				continue
			}
			b.WriteString(MarshalRepository(repo))
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

// MarshalRepository formats one list item:
// "- [name](url) - description (Go, ★ 1,234, 56 forks)".
func MarshalRepository(r bulletin.Repository) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- [%s](%s)", r.Name, r.URL)
	if r.Description != nil && strings.TrimSpace(*r.Description) != "" {
		b.WriteString(" - ")
		b.WriteString(strings.Join(strings.Fields(*r.Description), " "))
	}
	stats := make([]string, 0, 3)
	if r.PrimaryLanguage != nil && *r.PrimaryLanguage != "" {
		stats = append(stats, *r.PrimaryLanguage)
	}
	stats = append(stats, "★ "+humanize.Comma(int64(r.StarCount)))
	stats = append(stats, humanize.Comma(int64(r.ForkCount))+" "+plural(r.ForkCount, "fork", "forks"))
	fmt.Fprintf(&b, " (%s)", strings.Join(stats, ", "))
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts markdown to an HTML fragment. Raw HTML in the input is
// not rendered.
func RenderHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
