package bulletin

import "strings"

const (
	WarningBlankSectionName = "Section names cannot be blank."
	WarningEmptySection     = "Every section needs at least one repository."
)

// Gate summarizes whether the working copy can be saved or extended.
type Gate struct {
	HasBlankSectionName bool
	HasEmptySection     bool
	CanAddSection       bool
	CanSave             bool
}

// EvaluateGate computes the gate for doc. saving reports a save in flight.
func EvaluateGate(doc *Document, saving bool) Gate {
	var g Gate
	if doc != nil {
		for _, s := range doc.Sections {
			if strings.TrimSpace(s.Name) == "" {
				g.HasBlankSectionName = true
			}
			if len(s.Repos) == 0 {
				g.HasEmptySection = true
			}
		}
	}
	blocked := g.HasBlankSectionName || g.HasEmptySection || saving
	g.CanAddSection = doc != nil && !blocked
	g.CanSave = doc != nil && !blocked && len(doc.Sections) > 0
	return g
}

// Warning returns the single message to show while the gate is closed.
func (g Gate) Warning() string {
	switch {
	case g.HasBlankSectionName:
		return WarningBlankSectionName
	case g.HasEmptySection:
		return WarningEmptySection
	}
	return ""
}
