package document

import (
	"fmt"
	"strings"

	docx "baliance.com/gooxml/document"
	"github.com/samber/lo"
)

// ExtractText returns the text of every paragraph in document order, one per line.
// Line breaks inside a paragraph come back as "\n" and tabs as "\t".
func ExtractText(path string) (string, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}

	texts := lo.Map(doc.Paragraphs(), func(p docx.Paragraph, _ int) string {
		return paragraphText(p)
	})
	return strings.Join(texts, "\n"), nil
}

// ReadTables returns the cell text of every table in the document.
func ReadTables(path string) ([][][]string, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return lo.Map(doc.Tables(), func(t docx.Table, _ int) [][]string {
		return lo.Map(t.Rows(), func(r docx.Row, _ int) []string {
			return lo.Map(r.Cells(), func(c docx.Cell, _ int) string {
				return strings.Join(lo.Map(c.Paragraphs(), func(p docx.Paragraph, _ int) string {
					return paragraphText(p)
				}), "\n")
			})
		})
	}), nil
}

func paragraphText(p docx.Paragraph) string {
	var sb strings.Builder
	for _, run := range p.Runs() {
		for _, ic := range run.X().EG_RunInnerContent {
			if ic.Br != nil {
				sb.WriteByte('\n')
			}
			if ic.Tab != nil {
				sb.WriteByte('\t')
			}
			if ic.T != nil {
				sb.WriteString(ic.T.Content)
			}
		}
	}
	return sb.String()
}
