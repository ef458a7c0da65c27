package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"shltmc-be/internal/domain"
	"shltmc-be/pkg/logger"
)

// EMU per pixel at 96 DPI; shape extents in slide XML are in EMU.
const emuPerPixel = 9525

const imageRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

var (
	slideRe = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)
	relIDRe = regexp.MustCompile(`^rId(\d+)$`)

	// The template authors are inconsistent about spacing in these two
	// labels; normalize before substitution.
	evalSpacingRe   = regexp.MustCompile(`Evaluator\s+for`)
	ieSpacingRe     = regexp.MustCompile(`INDIVIDUAL\s+EVALUATOR\s+for`)
	placeholderRe   = regexp.MustCompile(`\{\{[^{}]+\}\}`)
	fillElementTags = map[string]bool{
		"noFill": true, "solidFill": true, "gradFill": true,
		"blipFill": true, "pattFill": true, "grpFill": true,
	}
)

// Renderer populates a deck template: text placeholders first, then
// image fills for the named avatar shapes.
type Renderer struct {
	staticRoot string
	log        *logger.Logger
}

// NewRenderer creates a deck renderer resolving avatars under
// staticRoot.
func NewRenderer(staticRoot string, log *logger.Logger) *Renderer {
	return &Renderer{staticRoot: staticRoot, log: log}
}

// pptxFile is an order-preserving view of the template archive.
type pptxFile struct {
	names []string
	parts map[string][]byte
}

func (f *pptxFile) set(name string, data []byte) {
	if _, ok := f.parts[name]; !ok {
		f.names = append(f.names, name)
	}
	f.parts[name] = data
}

// Render loads the template, substitutes every placeholder across all
// slides and fills the avatar shapes. Data-shape problems (missing
// images, odd shapes) are logged and skipped; only infrastructure
// failures return an error.
func (r *Renderer) Render(templatePath string, p *Placeholders) ([]byte, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open template archive: %w", err)
	}

	file := &pptxFile{parts: make(map[string][]byte)}
	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", entry.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to read part %s: %w", entry.Name, err)
		}
		rc.Close()
		file.set(entry.Name, buf.Bytes())
	}

	usedJPEG := false
	for _, name := range append([]string(nil), file.names...) {
		if !slideRe.MatchString(name) {
			continue
		}
		added, err := r.renderSlide(file, name, p)
		if err != nil {
			return nil, err
		}
		usedJPEG = usedJPEG || added
	}

	if usedJPEG {
		if err := ensureJPEGContentType(file); err != nil {
			return nil, err
		}
	}

	return writeArchive(file)
}

// renderSlide rewrites one slide part in place. Returns whether any
// image fill was added.
func (r *Renderer) renderSlide(file *pptxFile, name string, p *Placeholders) (bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(file.parts[name]); err != nil {
		return false, fmt.Errorf("failed to parse slide %s: %w", name, err)
	}

	relsName := relsPartName(name)
	rels, err := loadRels(file, relsName)
	if err != nil {
		return false, err
	}

	added := false
	for _, sp := range doc.FindElements("//p:sp") {
		shapeName := shapeNameOf(sp)
		contact, isAvatar := p.Avatars[shapeName]

		if !isAvatar {
			substituteText(sp, p)
			continue
		}

		if r.fillShape(file, rels, sp, shapeName, contact) {
			added = true
		}
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return false, fmt.Errorf("failed to serialize slide %s: %w", name, err)
	}
	file.set(name, out)

	relsOut, err := rels.WriteToBytes()
	if err != nil {
		return false, fmt.Errorf("failed to serialize rels %s: %w", relsName, err)
	}
	file.set(relsName, relsOut)

	return added, nil
}

func shapeNameOf(sp *etree.Element) string {
	if cNvPr := sp.FindElement("p:nvSpPr/p:cNvPr"); cNvPr != nil {
		return cNvPr.SelectAttrValue("name", "")
	}
	return ""
}

// substituteText rewrites every paragraph of the shape's text frame.
// The runs' texts are fused for matching so a token split across runs
// still substitutes; only the first run keeps its text (and style),
// the siblings are emptied rather than removed to avoid a style reset.
func substituteText(sp *etree.Element, p *Placeholders) {
	txBody := sp.FindElement("p:txBody")
	if txBody == nil {
		return
	}
	for _, para := range txBody.FindElements("a:p") {
		runs := para.FindElements("a:r")
		if len(runs) == 0 {
			continue
		}

		var fused strings.Builder
		for _, run := range runs {
			if t := run.FindElement("a:t"); t != nil {
				fused.WriteString(t.Text())
			}
		}

		original := fused.String()
		replaced := p.substitute(original)
		if replaced == original {
			continue
		}

		for i, run := range runs {
			t := run.FindElement("a:t")
			if t == nil {
				t = run.CreateElement("a:t")
			}
			if i == 0 {
				t.SetText(replaced)
			} else {
				t.SetText("")
			}
		}
	}
}

// substitute normalizes the evaluator label spacing and replaces every
// {{key}} token literally.
func (p *Placeholders) substitute(s string) string {
	s = evalSpacingRe.ReplaceAllString(s, "Evaluator for")
	s = ieSpacingRe.ReplaceAllString(s, "INDIVIDUAL EVALUATOR for")
	return placeholderRe.ReplaceAllStringFunc(s, func(token string) string {
		key := token[2 : len(token)-2]
		if val, ok := p.Text[key]; ok {
			return val
		}
		return token // unknown tokens are left for the template author
	})
}

// fillShape crops the contact's avatar to the shape's aspect and
// injects a stretched picture fill, preserving the shape's geometry.
// Reports whether a fill was added.
func (r *Renderer) fillShape(file *pptxFile, rels *etree.Document, sp *etree.Element, shapeName string, contact *domain.Contact) bool {
	spPr := sp.FindElement("p:spPr")
	if spPr == nil {
		r.log.WithField("shape", shapeName).Warn("Avatar shape has no properties, skipping")
		return false
	}

	wPx, hPx := shapePixelSize(spPr)
	if wPx <= 0 || hPx <= 0 {
		r.log.WithField("shape", shapeName).Warn("Avatar shape has no extent, skipping")
		return false
	}

	srcPath := resolveAvatarPath(r.staticRoot, contact)
	if srcPath == "" {
		r.log.WithField("shape", shapeName).Warn("No avatar image available, skipping")
		return false
	}

	tmpPath, err := cropToAspect(srcPath, wPx, hPx)
	if err != nil {
		r.log.WithError(err).WithField("shape", shapeName).Error("Failed to crop avatar, skipping")
		return false
	}
	imgData, err := os.ReadFile(tmpPath)
	// The cropped temp file is only needed long enough to copy it into
	// the archive.
	_ = os.Remove(tmpPath)
	if err != nil {
		r.log.WithError(err).WithField("shape", shapeName).Error("Failed to read cropped avatar, skipping")
		return false
	}

	mediaName := fmt.Sprintf("ppt/media/avatar_%s.jpg", uuid.NewString())
	file.set(mediaName, imgData)

	relID := addImageRel(rels, "../media/"+strings.TrimPrefix(mediaName, "ppt/media/"))

	removeExistingFill(spPr)
	insertBlipFill(spPr, relID)
	return true
}

// shapePixelSize reads the shape extent and converts EMU to pixels.
func shapePixelSize(spPr *etree.Element) (int, int) {
	ext := spPr.FindElement("a:xfrm/a:ext")
	if ext == nil {
		return 0, 0
	}
	cx, _ := strconv.Atoi(ext.SelectAttrValue("cx", "0"))
	cy, _ := strconv.Atoi(ext.SelectAttrValue("cy", "0"))
	return cx / emuPerPixel, cy / emuPerPixel
}

// removeExistingFill strips any fill element already present on the
// shape properties.
func removeExistingFill(spPr *etree.Element) {
	for _, child := range spPr.ChildElements() {
		if fillElementTags[child.Tag] {
			spPr.RemoveChild(child)
		}
	}
}

// insertBlipFill inserts a stretched picture fill referencing relID.
// Schema order requires the fill to follow the transform and geometry
// children.
func insertBlipFill(spPr *etree.Element, relID string) {
	fill := etree.NewElement("a:blipFill")
	blip := fill.CreateElement("a:blip")
	blip.CreateAttr("r:embed", relID)
	stretch := fill.CreateElement("a:stretch")
	stretch.CreateElement("a:fillRect")

	insertAt := 0
	for i, tok := range spPr.Child {
		el, ok := tok.(*etree.Element)
		if !ok {
			continue
		}
		switch el.Tag {
		case "xfrm", "prstGeom", "custGeom":
			insertAt = i + 1
		}
	}
	spPr.InsertChildAt(insertAt, fill)
}

// relsPartName maps ppt/slides/slideN.xml to its relationship part.
func relsPartName(slideName string) string {
	base := strings.TrimPrefix(slideName, "ppt/slides/")
	return "ppt/slides/_rels/" + base + ".rels"
}

// loadRels parses the slide's relationship part, creating an empty one
// when the template carries none.
func loadRels(file *pptxFile, relsName string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if data, ok := file.parts[relsName]; ok {
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, fmt.Errorf("failed to parse rels %s: %w", relsName, err)
		}
		return doc, nil
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	return doc, nil
}

// addImageRel registers an image relationship and returns its id.
func addImageRel(rels *etree.Document, target string) string {
	root := rels.Root()
	maxID := 0
	for _, rel := range root.ChildElements() {
		if m := relIDRe.FindStringSubmatch(rel.SelectAttrValue("Id", "")); m != nil {
			if n, _ := strconv.Atoi(m[1]); n > maxID {
				maxID = n
			}
		}
	}
	relID := fmt.Sprintf("rId%d", maxID+1)

	rel := root.CreateElement("Relationship")
	rel.CreateAttr("Id", relID)
	rel.CreateAttr("Type", imageRelType)
	rel.CreateAttr("Target", target)
	return relID
}

// ensureJPEGContentType registers the jpg default content type if the
// template does not already carry one.
func ensureJPEGContentType(file *pptxFile) error {
	const ctName = "[Content_Types].xml"
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(file.parts[ctName]); err != nil {
		return fmt.Errorf("failed to parse content types: %w", err)
	}

	root := doc.Root()
	for _, def := range root.SelectElements("Default") {
		ext := strings.ToLower(def.SelectAttrValue("Extension", ""))
		if ext == "jpg" || ext == "jpeg" {
			return nil
		}
	}

	def := root.CreateElement("Default")
	def.CreateAttr("Extension", "jpg")
	def.CreateAttr("ContentType", "image/jpeg")

	out, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize content types: %w", err)
	}
	file.set(ctName, out)
	return nil
}

// writeArchive serializes the parts back into a zip, preserving the
// template's entry order.
func writeArchive(file *pptxFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range file.names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", name, err)
		}
		if _, err := w.Write(file.parts[name]); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
