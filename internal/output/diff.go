package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// InlineDiff renders a character level diff from old to new on one line.
// Deletions are wrapped as "[-text-]" and insertions as "{+text+}".
func InlineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(StyleError.Render("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			b.WriteString(StyleSuccess.Render("{+" + d.Text + "+}"))
		default:
			b.WriteString(d.Text)
		}
	}

	return b.String()
}
