// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders notes to external formats: a fixed-layout
// single-page PDF and YAML/JSON dumps of the note list.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

const (
	pdfVersion  = "1.4"
	pdfProducer = "CollabNotes"

	defaultPageWidth  = 612 // US Letter, in points (1 pt = 1/72 inch)
	defaultPageHeight = 792
	defaultFontSize   = 12

	textMarginX = 50
	titleDrop   = 42 // title baseline sits 42 pt below the top edge (y=750 on Letter)
	contentDrop = 72 // content starts 72 pt below the top edge (y=720 on Letter)
)

// PDF renders a note as a single-page PDF document. The layout is fixed: the
// title line at the top, content lines beneath it, Helvetica throughout.
// There is no pagination; content past the bottom edge is clipped.
func PDF(note types.Note, cfg types.ExportConfig) ([]byte, error) {
	width := cfg.PageWidth
	if width == 0 {
		width = defaultPageWidth
	}
	height := cfg.PageHeight
	if height == 0 {
		height = defaultPageHeight
	}
	fontSize := cfg.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
	if width <= 0 || height <= 0 || fontSize <= 0 {
		return nil, fmt.Errorf("invalid page geometry: %gx%g at %gpt", width, height, fontSize)
	}

	content := contentStream(note, height, fontSize)

	objects := []string{
		`<< /Type /Catalog /Pages 2 0 R >>`,
		`<< /Type /Pages /Kids [3 0 R] /Count 1 >>`,
		fmt.Sprintf(
			`<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>`,
			width, height,
		),
		`<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>`,
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		fmt.Sprintf(`<< /Producer (%s) /Title (%s) >>`,
			escapeText(pdfProducer), escapeText(note.Title)),
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", pdfVersion)

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, len(objects), xrefOffset)

	return buf.Bytes(), nil
}

// contentStream builds the page's text-drawing operations: a "Title:" line
// near the top edge and the content lines beneath a "Content:" label.
func contentStream(note types.Note, height, fontSize float64) string {
	leading := fontSize + 3

	var b strings.Builder
	b.WriteString("BT\n")
	fmt.Fprintf(&b, "/F1 %g Tf\n", fontSize)
	fmt.Fprintf(&b, "%g TL\n", leading)
	fmt.Fprintf(&b, "%d %g Td\n", textMarginX, height-titleDrop)
	fmt.Fprintf(&b, "(Title: %s) Tj\n", escapeText(note.Title))
	fmt.Fprintf(&b, "0 %g Td\n", float64(titleDrop-contentDrop))
	b.WriteString("(Content:) Tj\n")
	for _, line := range strings.Split(note.Content, "\n") {
		fmt.Fprintf(&b, "(%s) '\n", escapeText(line))
	}
	b.WriteString("ET")
	return b.String()
}

// escapeText escapes characters with special meaning inside PDF literal
// strings: backslash, parentheses, and raw line breaks.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`(`, `\(`,
		`)`, `\)`,
		"\r", `\r`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
