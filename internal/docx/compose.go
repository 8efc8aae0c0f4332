package docx

import (
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Content types for media parts carried across during composition.
var mediaContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"emf":  "image/x-emf",
	"wmf":  "image/x-wmf",
	"svg":  "image/svg+xml",
}

// Append grafts every block of src's body (section properties excluded)
// onto the end of d's body. With keepStyles, style definitions and the
// numbering catalog of src are merged into d's; without it, named-style
// references are stripped so the content falls back to d's defaults.
// Relationship-backed content (images, external links) is carried over
// with fresh relationship ids.
func (d *Document) Append(src *Document, keepStyles bool) error {
	d.mergeNamespaces(src)
	if keepStyles {
		d.mergeStyles(src)
		d.mergeNumbering(src)
	}

	seen := map[string]string{}
	for _, child := range src.body.ChildElements() {
		if child.Space == "w" && child.Tag == "sectPr" {
			continue
		}
		clone := child.Copy()
		if err := d.remapRelationships(clone, src, seen); err != nil {
			return err
		}
		if !keepStyles {
			stripStyleRefs(clone)
		}
		d.addBlock(clone)
	}
	return nil
}

// mergeNamespaces copies namespace declarations from src's document
// root onto d's, so grafted content keeps its prefixes (wp, a, pic,
// w14, ...) resolvable.
func (d *Document) mergeNamespaces(src *Document) {
	srcRoot := src.main.Root()
	dstRoot := d.main.Root()
	if srcRoot == nil || dstRoot == nil {
		return
	}
	for _, attr := range srcRoot.Attr {
		if attr.Space != "xmlns" && !(attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		full := attr.Key
		if attr.Space != "" {
			full = attr.Space + ":" + attr.Key
		}
		if dstRoot.SelectAttr(full) == nil {
			dstRoot.CreateAttr(full, attr.Value)
		}
	}
}

// mergeStyles copies src style definitions whose ids d does not already
// define. First definition wins on id clashes.
func (d *Document) mergeStyles(src *Document) {
	srcRoot := src.styles.Root()
	dstRoot := d.styles.Root()
	if srcRoot == nil || dstRoot == nil {
		return
	}
	have := map[string]bool{}
	for _, id := range d.StyleIDs() {
		have[id] = true
	}
	for _, style := range srcRoot.SelectElements("w:style") {
		id := style.SelectAttrValue("w:styleId", "")
		if id == "" || have[id] {
			continue
		}
		have[id] = true
		dstRoot.AddChild(style.Copy())
	}
}

// mergeNumbering carries src's numbering catalog over wholesale when d
// has none. When both sides define one, d's wins; appended lists then
// resolve against d's catalog best-effort.
func (d *Document) mergeNumbering(src *Document) {
	if _, ok := d.parts[partNumbering]; ok {
		return
	}
	data, ok := src.parts[partNumbering]
	if !ok {
		return
	}
	d.parts[partNumbering] = data

	relType := "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	if root := d.rels.Root(); root != nil {
		for _, rel := range root.SelectElements("Relationship") {
			if rel.SelectAttrValue("Type", "") == relType {
				return
			}
		}
		rel := root.CreateElement("Relationship")
		rel.CreateAttr("Id", d.nextRelID())
		rel.CreateAttr("Type", relType)
		rel.CreateAttr("Target", "numbering.xml")
	}
	d.ensureOverride("/word/numbering.xml",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml")
}

// remapRelationships rewrites r:id/r:embed/r:link attributes in the
// cloned subtree to relationships of d, copying the referenced parts
// across. seen caches src-rel-id → dst-rel-id within one Append.
func (d *Document) remapRelationships(el *etree.Element, src *Document, seen map[string]string) error {
	for i := range el.Attr {
		attr := &el.Attr[i]
		if attr.Space != "r" {
			continue
		}
		if attr.Key != "id" && attr.Key != "embed" && attr.Key != "link" {
			continue
		}
		newID, err := d.importRelationship(attr.Value, src, seen)
		if err != nil {
			return err
		}
		attr.Value = newID
	}
	for _, child := range el.ChildElements() {
		if err := d.remapRelationships(child, src, seen); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) importRelationship(oldID string, src *Document, seen map[string]string) (string, error) {
	if newID, ok := seen[oldID]; ok {
		return newID, nil
	}
	srcRel := findRelationship(src.rels, oldID)
	if srcRel == nil {
		return "", fmt.Errorf("unresolved relationship %q", oldID)
	}
	relType := srcRel.SelectAttrValue("Type", "")
	target := srcRel.SelectAttrValue("Target", "")
	mode := srcRel.SelectAttrValue("TargetMode", "")

	newID := d.nextRelID()
	root := d.rels.Root()
	rel := root.CreateElement("Relationship")
	rel.CreateAttr("Id", newID)
	rel.CreateAttr("Type", relType)

	if strings.EqualFold(mode, "External") {
		rel.CreateAttr("Target", target)
		rel.CreateAttr("TargetMode", "External")
		seen[oldID] = newID
		return newID, nil
	}

	srcName := resolvePartName(target)
	data, ok := src.parts[srcName]
	if !ok {
		root.RemoveChild(rel)
		return "", fmt.Errorf("relationship %q points at missing part %s", oldID, srcName)
	}
	dstName := d.adoptPart(srcName, data)
	rel.CreateAttr("Target", strings.TrimPrefix(dstName, "word/"))
	d.ensureDefaultType(dstName)
	seen[oldID] = newID
	return newID, nil
}

func findRelationship(rels *etree.Document, id string) *etree.Element {
	root := rels.Root()
	if root == nil {
		return nil
	}
	for _, rel := range root.SelectElements("Relationship") {
		if rel.SelectAttrValue("Id", "") == id {
			return rel
		}
	}
	return nil
}

// resolvePartName turns a document-part-relative target into a package
// part name.
func resolvePartName(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean("word/" + target)
}

// adoptPart stores data under name, uniquifying the name when a
// different part already occupies it.
func (d *Document) adoptPart(name string, data []byte) string {
	if existing, ok := d.parts[name]; !ok || string(existing) == string(data) {
		d.parts[name] = data
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if existing, ok := d.parts[candidate]; !ok || string(existing) == string(data) {
			d.parts[candidate] = data
			return candidate
		}
	}
}

// ensureDefaultType registers a Default content type for the part's
// extension unless the package already covers it.
func (d *Document) ensureDefaultType(partName string) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(partName), "."))
	if ext == "" {
		return
	}
	root := d.types.Root()
	if root == nil {
		return
	}
	for _, def := range root.SelectElements("Default") {
		if strings.EqualFold(def.SelectAttrValue("Extension", ""), ext) {
			return
		}
	}
	for _, ov := range root.SelectElements("Override") {
		if ov.SelectAttrValue("PartName", "") == "/"+partName {
			return
		}
	}
	ct, ok := mediaContentTypes[ext]
	if !ok {
		ct = "application/octet-stream"
	}
	def := root.CreateElement("Default")
	def.CreateAttr("Extension", ext)
	def.CreateAttr("ContentType", ct)
}

func (d *Document) ensureOverride(partName, contentType string) {
	root := d.types.Root()
	if root == nil {
		return
	}
	for _, ov := range root.SelectElements("Override") {
		if ov.SelectAttrValue("PartName", "") == partName {
			return
		}
	}
	ov := root.CreateElement("Override")
	ov.CreateAttr("PartName", partName)
	ov.CreateAttr("ContentType", contentType)
}

func stripStyleRefs(el *etree.Element) {
	for _, tag := range []string{".//w:pStyle", ".//w:rStyle"} {
		for _, ref := range el.FindElements(tag) {
			if parent := ref.Parent(); parent != nil {
				parent.RemoveChild(ref)
			}
		}
	}
}
