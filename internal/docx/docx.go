// Package docx assembles a minimal WordprocessingML (.docx) package in memory:
// headings, styled text runs, bullet lists and inline PNG pictures. The output
// opens in Word, LibreOffice and Google Docs and stays fully editable.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/png"
	"strings"
)

const emuPerInch = 914400

// Run is one stretch of text inside a paragraph.
type Run struct {
	Text string
	Bold bool
}

// Text returns an unstyled run.
func Text(s string) Run { return Run{Text: s} }

// Bold returns a bold run.
func Bold(s string) Run { return Run{Text: s, Bold: true} }

type imagePart struct {
	data []byte
}

// Document accumulates block-level content and serializes it with Bytes.
type Document struct {
	body      []string
	images    []imagePart
	numbering bool
}

// Option configures a new Document.
type Option func(*Document)

// WithoutListNumbering builds the package without a numbering part. AddBullet
// then falls back to a visible glyph prefix instead of a real list style.
func WithoutListNumbering() Option {
	return func(d *Document) { d.numbering = false }
}

// NewDocument returns an empty document with list numbering enabled.
func NewDocument(opts ...Option) *Document {
	d := &Document{numbering: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListNumberingAvailable reports whether bullets use a real list style.
func (d *Document) ListNumberingAvailable() bool { return d.numbering }

// AddHeading appends a heading paragraph. Level 0 is the document title,
// level 1 a section heading.
func (d *Document) AddHeading(text string, level int) {
	style := "Heading1"
	if level <= 0 {
		style = "Title"
	}
	d.body = append(d.body, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr>%s</w:p>`,
		style, runXML(Run{Text: text}),
	))
}

// AddParagraph appends a plain paragraph built from the given runs.
func (d *Document) AddParagraph(runs ...Run) {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(runXML(r))
	}
	d.body = append(d.body, "<w:p>"+sb.String()+"</w:p>")
}

// AddBullet appends one bullet item. With numbering enabled it uses the list
// paragraph style; otherwise the text is prefixed with a bullet glyph so the
// item still renders visibly.
func (d *Document) AddBullet(text string) {
	if !d.numbering {
		d.AddParagraph(Text("• " + text))
		return
	}
	d.body = append(d.body, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>%s</w:p>`,
		runXML(Run{Text: text}),
	))
}

// AddPicture embeds a PNG image as an inline picture constrained to the given
// width; height follows the image aspect ratio.
func (d *Document) AddPicture(pngData []byte, widthInches float64) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return fmt.Errorf("decode png: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || widthInches <= 0 {
		return fmt.Errorf("invalid picture dimensions %dx%d", cfg.Width, cfg.Height)
	}

	cx := int64(widthInches * emuPerInch)
	cy := cx * int64(cfg.Height) / int64(cfg.Width)

	d.images = append(d.images, imagePart{data: pngData})
	index := len(d.images)
	relID := imageRelID(index)

	d.body = append(d.body, fmt.Sprintf(
		`<w:p><w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
			`<wp:extent cx="%d" cy="%d"/>`+
			`<wp:docPr id="%d" name="Picture %d"/>`+
			`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:pic>`+
			`<pic:nvPicPr><pic:cNvPr id="%d" name="Picture %d"/><pic:cNvPicPr/></pic:nvPicPr>`+
			`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
			`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
			`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		cx, cy, index, index, index, index, relID, cx, cy,
	))
	return nil
}

// Bytes serializes the document into a .docx archive.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", d.documentXML()},
	}
	if d.numbering {
		parts = append(parts, struct {
			name    string
			content string
		}{"word/numbering.xml", numberingXML})
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	for i, img := range d.images {
		name := fmt.Sprintf("word/media/image%d.png", i+1)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := w.Write(img.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) documentXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	sb.WriteString("<w:body>")
	for _, block := range d.body {
		sb.WriteString(block)
	}
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	sb.WriteString("</w:body></w:document>")
	return sb.String()
}

func (d *Document) contentTypesXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	if len(d.images) > 0 {
		sb.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	}
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	if d.numbering {
		sb.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

func (d *Document) documentRelsXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	if d.numbering {
		sb.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	}
	for i := range d.images {
		sb.WriteString(fmt.Sprintf(
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image%d.png"/>`,
			imageRelID(i+1), i+1,
		))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func imageRelID(index int) string {
	// Offset past the fixed styles/numbering relationship ids.
	return fmt.Sprintf("rId%d", 100+index)
}

func runXML(r Run) string {
	var props string
	if r.Bold {
		props = "<w:rPr><w:b/></w:rPr>"
	}
	return fmt.Sprintf(`<w:r>%s<w:t xml:space="preserve">%s</w:t></w:r>`, props, escapeXML(r.Text))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const stylesXML = xmlHeader +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:styleId="Title">` +
	`<w:name w:val="Title"/>` +
	`<w:pPr><w:spacing w:after="120"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="56"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1">` +
	`<w:name w:val="heading 1"/>` +
	`<w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListParagraph">` +
	`<w:name w:val="List Paragraph"/>` +
	`<w:pPr><w:ind w:left="720"/></w:pPr>` +
	`</w:style>` +
	`</w:styles>`

const numberingXML = xmlHeader +
	`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:lvl w:ilvl="0">` +
	`<w:numFmt w:val="bullet"/>` +
	`<w:lvlText w:val="&#8226;"/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
