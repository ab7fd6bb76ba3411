// Package document writes screening notes and tables as Word documents and
// reads their text back.
package document

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/color"
	docx "baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
	"github.com/mrsinham/screenforge/internal/table"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyIdentifier is returned when no identifier is available to name the file.
	ErrEmptyIdentifier = errors.New("empty identifier")
	// ErrEmptyTable is returned when a table has no rows or no columns.
	ErrEmptyTable = table.ErrEmpty
	// ErrRaggedRow is returned when a data row width differs from the header.
	ErrRaggedRow = table.ErrRagged
)

// DefaultTableTitle is the heading written above table documents.
const DefaultTableTitle = "Скрининг Документ"

// Writer saves documents into a directory. Existing files with the same
// derived name are overwritten.
type Writer struct {
	dir         string
	prefix      string
	textNaming  FilenameStrategy
	tableNaming FilenameStrategy
	tableTitle  string
	log         logrus.FieldLogger
}

// Option configures a Writer.
type Option func(*Writer)

// WithPrefix sets the filename prefix.
func WithPrefix(prefix string) Option {
	return func(w *Writer) { w.prefix = prefix }
}

// WithTextNaming sets the filename strategy for text documents.
func WithTextNaming(s FilenameStrategy) Option {
	return func(w *Writer) { w.textNaming = s }
}

// WithTableNaming sets the filename strategy for table documents.
func WithTableNaming(s FilenameStrategy) Option {
	return func(w *Writer) { w.tableNaming = s }
}

// WithTableTitle sets the heading above tables. An empty title omits the heading.
func WithTableTitle(title string) Option {
	return func(w *Writer) { w.tableTitle = title }
}

// WithLogger sets the logger used for save diagnostics. A nil logger is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// NewWriter creates a writer for dir. An empty dir means the current working directory.
// Text documents default to the full identifier, tables to its last four characters.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	w := &Writer{
		dir:         abs,
		prefix:      DefaultPrefix,
		textNaming:  FullID,
		tableNaming: LastFour,
		tableTitle:  DefaultTableTitle,
		log:         discardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Dir returns the absolute output directory.
func (w *Writer) Dir() string { return w.dir }

// TextPath returns the path SaveText would write for id.
func (w *Writer) TextPath(id string) string {
	return filepath.Join(w.dir, w.textNaming.Filename(w.prefix, id))
}

// TablePath returns the path SaveTable would write for id.
func (w *Writer) TablePath(id string) string {
	return filepath.Join(w.dir, w.tableNaming.Filename(w.prefix, id))
}

// SaveText writes content as a single paragraph and returns the absolute path.
// Newlines in content become line breaks within the paragraph.
func (w *Writer) SaveText(id, content string) (string, error) {
	if id == "" {
		return "", ErrEmptyIdentifier
	}
	return w.save(w.TextPath(id), textDocument(content))
}

// SaveNamed writes content as a single paragraph to name inside the output directory.
func (w *Writer) SaveNamed(name, content string) (string, error) {
	if name == "" {
		return "", ErrEmptyIdentifier
	}
	return w.save(filepath.Join(w.dir, name), textDocument(content))
}

// SaveTable writes rows as a table whose first row is the header and returns
// the absolute path. Rows must all have the header's width.
func (w *Writer) SaveTable(id string, rows []table.Row) (string, error) {
	if id == "" {
		return "", ErrEmptyIdentifier
	}
	if err := table.Validate(rows); err != nil {
		return "", err
	}
	return w.save(w.TablePath(id), tableDocument(w.tableTitle, rows))
}

func (w *Writer) save(path string, doc *docx.Document) (string, error) {
	if err := doc.SaveToFile(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	w.log.WithField("path", path).Infof("Document saved as %s", path)
	return path, nil
}

func textDocument(content string) *docx.Document {
	doc := docx.New()
	para := doc.AddParagraph()
	for i, line := range strings.Split(content, "\n") {
		run := para.AddRun()
		if i > 0 {
			run.AddBreak()
		}
		run.AddText(line)
	}
	return doc
}

func tableDocument(title string, rows []table.Row) *docx.Document {
	doc := docx.New()

	if title != "" {
		heading := doc.AddParagraph()
		heading.SetStyle("Heading1")
		heading.AddRun().AddText(title)
	}

	tbl := doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	tbl.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	for i, row := range rows {
		r := tbl.AddRow()
		for _, cell := range row {
			run := r.AddCell().AddParagraph().AddRun()
			if i == 0 {
				run.Properties().SetBold(true)
			}
			run.AddText(cell.Text())
		}
	}
	return doc
}
