// Package docx reads, builds, and composes documents in the OOXML
// word-processing container format. It covers the slice of the format a
// merge needs: block-level content, bookmarks, internal hyperlinks,
// style catalogs, and the relationships behind embedded media. It is
// not a general-purpose OOXML library.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"
)

const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partNumbering    = "word/numbering.xml"
)

// Document is one word-processing package held fully in memory. The
// four XML parts a merge manipulates are kept parsed; every other part
// (media, themes, fonts) is carried verbatim.
type Document struct {
	main   *etree.Document
	styles *etree.Document
	rels   *etree.Document
	types  *etree.Document
	parts  map[string][]byte
	body   *etree.Element
}

// New returns an empty document with the default style and numbering
// catalogs (Normal, three heading levels, Hyperlink, List Bullet).
func New() *Document {
	d := &Document{parts: map[string][]byte{
		partPackageRels: []byte(packageRelsXML),
		partNumbering:   []byte(numberingXML),
	}}
	d.main = mustParse(documentXML)
	d.styles = mustParse(stylesXML)
	d.rels = mustParse(documentRelsXML)
	d.types = mustParse(contentTypesXML)
	d.body = d.main.Root().SelectElement("w:body")
	return d
}

func mustParse(s string) *etree.Document {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		panic(fmt.Sprintf("docx: bad template: %v", err))
	}
	return doc
}

// Open reads a document package from disk. A file that is not a zip, or
// a zip without a word-processing main part, is a structural error.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer zr.Close()

	parts := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		parts[f.Name] = data
	}

	d := &Document{parts: parts}
	if d.main, err = parsePart(parts, partDocument); err != nil {
		return nil, err
	}
	if d.main == nil {
		return nil, fmt.Errorf("not a word-processing document: missing %s", partDocument)
	}
	root := d.main.Root()
	if root == nil || root.SelectElement("w:body") == nil {
		return nil, fmt.Errorf("malformed document: no body in %s", partDocument)
	}
	d.body = root.SelectElement("w:body")
	delete(parts, partDocument)

	if d.styles, err = parsePart(parts, partStyles); err != nil {
		return nil, err
	}
	if d.styles == nil {
		d.styles = mustParse(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`)
	}
	delete(parts, partStyles)

	if d.rels, err = parsePart(parts, partDocumentRels); err != nil {
		return nil, err
	}
	if d.rels == nil {
		d.rels = mustParse(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`)
	}
	delete(parts, partDocumentRels)

	if d.types, err = parsePart(parts, partContentTypes); err != nil {
		return nil, err
	}
	if d.types == nil {
		d.types = mustParse(contentTypesXML)
	}
	delete(parts, partContentTypes)

	return d, nil
}

func parsePart(parts map[string][]byte, name string) (*etree.Document, error) {
	data, ok := parts[name]
	if !ok {
		return nil, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return doc, nil
}

// Save writes the package to path in one observable step: the zip is
// assembled in a temp file next to the destination and renamed over it.
func (d *Document) Save(path string) error {
	final := map[string][]byte{}
	for name, data := range d.parts {
		final[name] = data
	}
	for name, doc := range map[string]*etree.Document{
		partContentTypes: d.types,
		partDocument:     d.main,
		partStyles:       d.styles,
		partDocumentRels: d.rels,
	} {
		data, err := doc.WriteToBytes()
		if err != nil {
			return fmt.Errorf("serialize %s: %w", name, err)
		}
		final[name] = data
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".docnav-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	zw := zip.NewWriter(tmp)

	// Content types first, then the rest in a stable order.
	names := []string{partContentTypes}
	for name := range final {
		if name != partContentTypes {
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])
	for _, name := range names {
		w, err := zw.Create(name)
		if err == nil {
			_, err = w.Write(final[name])
		}
		if err != nil {
			zw.Close()
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Paragraph wraps one w:p element.
type Paragraph struct {
	el *etree.Element
}

// addBlock appends a block-level element to the body, keeping the
// section properties last.
func (d *Document) addBlock(el *etree.Element) {
	if sectPr := d.body.SelectElement("w:sectPr"); sectPr != nil {
		d.body.InsertChildAt(sectPr.Index(), el)
		return
	}
	d.body.AddChild(el)
}

// AddParagraph appends a plain paragraph. Empty text yields an empty
// paragraph (a spacer).
func (d *Document) AddParagraph(text string) Paragraph {
	p := etree.NewElement("w:p")
	if text != "" {
		addRun(p, text)
	}
	d.addBlock(p)
	return Paragraph{el: p}
}

// AddHeading appends a heading paragraph. Levels map onto the
// Heading1..Heading3 styles; anything outside that range is clamped.
func (d *Document) AddHeading(text string, level int) Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	p := etree.NewElement("w:p")
	pPr := p.CreateElement("w:pPr")
	style := pPr.CreateElement("w:pStyle")
	style.CreateAttr("w:val", fmt.Sprintf("Heading%d", level))
	addRun(p, text)
	d.addBlock(p)
	return Paragraph{el: p}
}

// AddBullet appends a bulleted list paragraph (List Bullet style).
func (d *Document) AddBullet(text string) Paragraph {
	p := etree.NewElement("w:p")
	pPr := p.CreateElement("w:pPr")
	style := pPr.CreateElement("w:pStyle")
	style.CreateAttr("w:val", "ListBullet")
	addRun(p, text)
	d.addBlock(p)
	return Paragraph{el: p}
}

// AddPageBreak appends a paragraph holding a single page break run.
func (d *Document) AddPageBreak() {
	p := etree.NewElement("w:p")
	r := p.CreateElement("w:r")
	br := r.CreateElement("w:br")
	br.CreateAttr("w:type", "page")
	d.addBlock(p)
}

func addRun(p *etree.Element, text string) {
	r := p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	if strings.TrimSpace(text) != text {
		t.CreateAttr("xml:space", "preserve")
	}
	t.SetText(text)
}

// Bookmark wraps the paragraph in a bookmarkStart/bookmarkEnd pair so
// internal links can target it. The numeric id is derived from the
// name, so re-bookmarking the same name yields the same id.
func (p Paragraph) Bookmark(name string) {
	id := strconv.FormatUint(xxhash.Sum64String(name)%2_000_000_000, 10)
	start := etree.NewElement("w:bookmarkStart")
	start.CreateAttr("w:id", id)
	start.CreateAttr("w:name", name)
	end := etree.NewElement("w:bookmarkEnd")
	end.CreateAttr("w:id", id)

	at := 0
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		at = pPr.Index() + 1
	}
	p.el.InsertChildAt(at, start)
	p.el.AddChild(end)
}

// AddInternalLink appends a hyperlink run targeting a bookmark anchor
// in the same document. Links render blue and underlined.
func (p Paragraph) AddInternalLink(text, anchor string) {
	link := p.el.CreateElement("w:hyperlink")
	link.CreateAttr("w:anchor", anchor)
	r := link.CreateElement("w:r")
	rPr := r.CreateElement("w:rPr")
	color := rPr.CreateElement("w:color")
	color.CreateAttr("w:val", "0000FF")
	u := rPr.CreateElement("w:u")
	u.CreateAttr("w:val", "single")
	t := r.CreateElement("w:t")
	if strings.TrimSpace(text) != text {
		t.CreateAttr("xml:space", "preserve")
	}
	t.SetText(text)
}

// Center aligns the paragraph to the center of the page.
func (p Paragraph) Center() {
	pPr := p.el.SelectElement("w:pPr")
	if pPr == nil {
		pPr = etree.NewElement("w:pPr")
		p.el.InsertChildAt(0, pPr)
	}
	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", "center")
}

// Text returns the concatenated run text of the paragraph, hyperlink
// runs included.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, t := range p.el.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// Style returns the paragraph style id, or "" for an unstyled paragraph.
func (p Paragraph) Style() string {
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		if s := pPr.SelectElement("w:pStyle"); s != nil {
			return s.SelectAttrValue("w:val", "")
		}
	}
	return ""
}

// Paragraphs returns every paragraph in the body, table cells included,
// in document order.
func (d *Document) Paragraphs() []Paragraph {
	els := d.body.FindElements(".//w:p")
	ps := make([]Paragraph, len(els))
	for i, el := range els {
		ps[i] = Paragraph{el: el}
	}
	return ps
}

// Bookmarks returns the bookmark names defined in the body, in document
// order.
func (d *Document) Bookmarks() []string {
	var names []string
	for _, b := range d.body.FindElements(".//w:bookmarkStart") {
		names = append(names, b.SelectAttrValue("w:name", ""))
	}
	return names
}

// LinkAnchors returns the internal-link targets in the body, in
// document order.
func (d *Document) LinkAnchors() []string {
	var anchors []string
	for _, h := range d.body.FindElements(".//w:hyperlink") {
		if a := h.SelectAttrValue("w:anchor", ""); a != "" {
			anchors = append(anchors, a)
		}
	}
	return anchors
}

// PageBreaks counts explicit page breaks in the body.
func (d *Document) PageBreaks() int {
	n := 0
	for _, br := range d.body.FindElements(".//w:br") {
		if br.SelectAttrValue("w:type", "") == "page" {
			n++
		}
	}
	return n
}

// StyleIDs returns the style ids defined in the style catalog.
func (d *Document) StyleIDs() []string {
	var ids []string
	if root := d.styles.Root(); root != nil {
		for _, s := range root.SelectElements("w:style") {
			ids = append(ids, s.SelectAttrValue("w:styleId", ""))
		}
	}
	return ids
}

// nextRelID returns an unused relationship id for the document part.
func (d *Document) nextRelID() string {
	max := 0
	if root := d.rels.Root(); root != nil {
		for _, rel := range root.SelectElements("Relationship") {
			id := rel.SelectAttrValue("Id", "")
			if n, err := strconv.Atoi(strings.TrimPrefix(id, "rId")); err == nil && n > max {
				max = n
			}
		}
	}
	return fmt.Sprintf("rId%d", max+1)
}
