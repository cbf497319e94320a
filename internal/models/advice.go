package models

import "strings"

// AdviceBlock is the first-aid guidance rendered for one selected symptom.
type AdviceBlock struct {
	Symptom string
	Title   string
	Text    string
}

// Lines splits the advice text into its individual lines.
func (a AdviceBlock) Lines() []string {
	var lines []string
	for _, l := range strings.Split(a.Text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Markdown renders the block as a single markdown list item.
func (a AdviceBlock) Markdown() string {
	return "- **" + a.Title + "**: " + a.Text
}
