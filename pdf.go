package main

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10
	pdfLineHeight = 5
	pdfBodySize   = 10
)

// headingFontSizes maps markdown heading level (1-6) to a point size.
var headingFontSizes = [...]float64{0, 18, 15, 13, 12, 11, 10.5}

// writePDF renders the generated document into a PDF file. The
// document is already markdown text; rendering walks its lines and
// picks fonts from the line shape (heading level, metadata line, body),
// stripping the inline syntax the same way snippets are stripped.
func writePDF(document, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	// Emoji glyphs in group headings have no font in core PDF fonts.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	width := float64(pdfPageWidth - 2*pdfMargin)

	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(pdfLineHeight / 2)
		case trimmed == "---":
			pdf.Line(pdfMargin, pdf.GetY(), pdfPageWidth-pdfMargin, pdf.GetY())
			pdf.Ln(pdfLineHeight / 2)
		case isHeadingLine(trimmed):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			if level > maxHeadingLevel {
				level = maxHeadingLevel
			}
			text := stripHeadingMarkers(strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
			pdf.SetFont("Helvetica", "B", headingFontSizes[level])
			pdf.MultiCell(width, pdfLineHeight+1, tr(text), "", "L", false)
			pdf.Ln(pdfLineHeight / 2)
		case strings.HasPrefix(trimmed, "*") && strings.HasSuffix(trimmed, "*") && !strings.HasPrefix(trimmed, "**"):
			pdf.SetFont("Helvetica", "I", pdfBodySize-1)
			pdf.MultiCell(width, pdfLineHeight, tr(stripMarkdown(trimmed)), "", "L", false)
		default:
			style := ""
			if strings.HasPrefix(trimmed, "**") {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, pdfBodySize)
			pdf.MultiCell(width, pdfLineHeight, tr(stripMarkdown(trimmed)), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("saving PDF to %s: %w", outputPath, err)
	}
	return nil
}
