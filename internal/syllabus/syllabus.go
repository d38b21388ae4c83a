// Package syllabus pulls plain text out of syllabus PDFs for topic suggestions.
package syllabus

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/topics"
)

// MaxTextLen caps the extracted text, in characters.
const MaxTextLen = 1500

// Extractor reads syllabus documents. Failures degrade to empty text.
type Extractor struct {
	log *logger.Logger
}

// NewExtractor creates an Extractor. A nil logger discards warnings.
func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{log: logger.OrNop(log)}
}

// Text returns up to MaxTextLen characters of the document's text, or ""
// when the document cannot be read.
func (e *Extractor) Text(path string) string {
	text, err := extractPDFText(path)
	if err != nil {
		e.log.Warn("syllabus unreadable, no topics suggested", "path", path, "error", err)
		return ""
	}
	return Truncate(text, MaxTextLen)
}

// Suggest returns candidate topics from the document at path.
func (e *Extractor) Suggest(path string) []string {
	return topics.SuggestTopics(e.Text(path))
}

// Truncate keeps the first n characters of s.
func Truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func extractPDFText(path string) (text string, err error) {
	// The PDF parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		if sb.Len() > MaxTextLen*4 {
			break
		}
	}
	return sb.String(), nil
}
