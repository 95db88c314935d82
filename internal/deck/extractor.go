package deck

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Extension is the presentation package format this package reads.
const Extension = ".pptx"

// ErrNotPPTX is returned when the file does not carry the supported
// presentation extension.
var ErrNotPPTX = errors.New("not a .pptx file")

// slidePartName matches slide parts inside the package, capturing the slide
// number. ZIP entry order is not slide order, so the number decides.
var slidePartName = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// Extract reads every slide of the .pptx file at path in deck order.
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist);
// a wrong extension yields ErrNotPPTX. An empty deck yields an empty slice.
func Extract(path string) ([]Slide, error) {
	// The existence check comes before the extension check so that a
	// missing file reports not-found rather than a format problem.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, fmt.Errorf("%w: %s", ErrNotPPTX, path)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer reader.Close() //nolint:errcheck

	parts := slideParts(&reader.Reader)

	slides := make([]Slide, 0, len(parts))
	for i, part := range parts {
		slide, err := parseSlide(part.file)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", part.file.Name, err)
		}
		slide.Number = i + 1
		slides = append(slides, slide)
	}

	log.Debug("Extracted deck", "file", path, "slides", len(slides))
	return slides, nil
}

type slidePart struct {
	number int
	file   *zip.File
}

// slideParts collects the slide XML parts sorted by slide number.
func slideParts(reader *zip.Reader) []slidePart {
	var parts []slidePart
	for _, file := range reader.File {
		match := slidePartName.FindStringSubmatch(file.Name)
		if match == nil {
			continue
		}
		number, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{number: number, file: file})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].number < parts[j].number })
	return parts
}

// Slide part XML, reduced to the text-bearing skeleton. Field tags use
// local names only, which encoding/xml matches across the DrawingML
// namespaces.
type slideXML struct {
	Shapes []shapeXML `xml:"cSld>spTree>sp"`
}

type shapeXML struct {
	Placeholder *placeholderXML `xml:"nvSpPr>nvPr>ph"`
	Paragraphs  []paragraphXML  `xml:"txBody>p"`
}

type placeholderXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type paragraphXML struct {
	Runs []string `xml:"r>t"`
}

// isTitle reports whether the placeholder is the slide's title region.
// The idx attribute defaults to 0, and index 0 is the title placeholder
// when no explicit type says otherwise.
func (p *placeholderXML) isTitle() bool {
	if p == nil {
		return false
	}
	switch p.Type {
	case "title", "ctrTitle":
		return true
	}
	return p.Type == "" && (p.Idx == "" || p.Idx == "0")
}

func parseSlide(file *zip.File) (Slide, error) {
	rc, err := file.Open()
	if err != nil {
		return Slide{}, err
	}
	defer rc.Close() //nolint:errcheck

	raw, err := io.ReadAll(rc)
	if err != nil {
		return Slide{}, err
	}

	var parsed slideXML
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return Slide{}, err
	}

	var slide Slide
	for _, shape := range parsed.Shapes {
		text := shapeText(shape)
		if text == "" {
			continue
		}
		if slide.Title == "" && shape.Placeholder.isTitle() {
			slide.Title = text
			continue
		}
		slide.Body = append(slide.Body, text)
	}
	return slide, nil
}

// shapeText flattens a shape's text frame: runs concatenate within a
// paragraph, paragraphs join on newlines, and the whole frame is trimmed.
func shapeText(shape shapeXML) string {
	lines := make([]string, 0, len(shape.Paragraphs))
	for _, para := range shape.Paragraphs {
		lines = append(lines, strings.Join(para.Runs, ""))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
