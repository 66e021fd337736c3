package transfer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// markdownCodec renders a dictionary as a readable document.
type markdownCodec struct{}

func (markdownCodec) ContentType() string { return "text/markdown; charset=utf-8" }

func (markdownCodec) Filename(name string) string { return filename(name, "words", "md") }

func (markdownCodec) Encode(doc Document) ([]byte, error) {
	return []byte(renderMarkdown(doc)), nil
}

func (markdownCodec) Decode([]byte) ([]Record, error) {
	return nil, errNotImportable(FormatMarkdown)
}

func renderMarkdown(doc Document) string {
	var sb strings.Builder
	title := "Dictionary"
	if doc.Dictionary != nil {
		title = doc.Dictionary.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if doc.Dictionary != nil && doc.Dictionary.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", doc.Dictionary.Description)
	}

	for _, wd := range words(doc) {
		fmt.Fprintf(&sb, "## %s\n\n", wd.Word)
		if wd.Pronunciation != "" {
			fmt.Fprintf(&sb, "*%s*\n\n", wd.Pronunciation)
		}
		fmt.Fprintf(&sb, "%s\n\n", wd.Definition)
		if len(wd.Examples) > 0 {
			sb.WriteString("**Examples**\n\n")
			for _, e := range wd.Examples {
				fmt.Fprintf(&sb, "- %s\n", e)
			}
			sb.WriteString("\n")
		}
		if len(wd.Categories) > 0 {
			fmt.Fprintf(&sb, "**Categories:** %s\n\n", strings.Join(wd.Categories, ", "))
		}
		if wd.Notes != "" {
			fmt.Fprintf(&sb, "> %s\n\n", wd.Notes)
		}
	}
	return sb.String()
}

// pdfCodec renders the markdown document to PDF.
type pdfCodec struct{}

func (pdfCodec) ContentType() string { return "application/pdf" }

func (pdfCodec) Filename(name string) string { return filename(name, "words", "pdf") }

// Encode renders through a temporary file, as the renderer only writes to paths.
func (pdfCodec) Encode(doc Document) ([]byte, error) {
	dir, err := os.MkdirTemp("", "wordbook-export-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "export.pdf")
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(renderMarkdown(doc))); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	b, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read rendered pdf: %w", err)
	}
	return b, nil
}

func (pdfCodec) Decode([]byte) ([]Record, error) {
	return nil, errNotImportable(FormatPDF)
}
