// Package hocr reads hOCR documents, the HTML-based interchange format most
// recognition engines (Tesseract among them) can emit, and extracts the
// word-level fragments needed for layout reconstruction. Only elements with
// class "ocrx_word" are consumed; the page/area/paragraph hierarchy above
// them carries no extra information for reconstruction and is ignored.
package hocr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/snapgrid/snapgrid/model"
)

// wordClass is the hOCR class of single recognized words.
const wordClass = "ocrx_word"

// Parse reads an hOCR document and returns its word fragments in document
// order. Words without a parseable bbox property, and words with no text,
// are skipped. Confidence comes from the x_wconf property, rescaled from
// the hOCR 0-100 range to [0,1]; words without one get confidence 1.
func Parse(r io.Reader) ([]model.Fragment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}

	var fragments []model.Fragment
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, wordClass) {
			if f, ok := wordFragment(n); ok {
				fragments = append(fragments, f)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return fragments, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) ([]model.Fragment, error) {
	return Parse(bytes.NewReader(b))
}

func wordFragment(n *html.Node) (model.Fragment, bool) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return model.Fragment{}, false
	}

	props := titleProperties(attr(n, "title"))

	box, ok := props["bbox"]
	if !ok || len(box) != 4 {
		return model.Fragment{}, false
	}
	coords := make([]float64, 4)
	for i, s := range box {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Fragment{}, false
		}
		coords[i] = v
	}

	confidence := 1.0
	if wc, ok := props["x_wconf"]; ok && len(wc) == 1 {
		if v, err := strconv.ParseFloat(wc[0], 64); err == nil {
			confidence = v / 100
		}
	}

	f, err := model.NewFragmentFromCorners(coords[0], coords[1], coords[2], coords[3], text, confidence)
	if err != nil {
		return model.Fragment{}, false
	}
	return f, true
}

// titleProperties splits an hOCR title attribute ("bbox 8 5 61 23; x_wconf 95")
// into named value lists.
func titleProperties(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
