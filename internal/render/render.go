// Package render converts stored structured rich-text documents into
// sanitized HTML safe for direct injection.
package render

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode/utf16"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// Renderer turns documents into sanitized HTML. Rendering is deterministic:
// the same document always yields byte-identical output.
type Renderer struct {
	sanitizer *Sanitizer
	logger    *log.Logger
}

// New creates a Renderer with the default sanitizer policy.
func New(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{sanitizer: NewSanitizer(), logger: logger}
}

// Render converts a document to sanitized HTML.
//
// A nil document, or one whose blocks carry no text, yields
// domain.ErrEmptyDocument and the sanitizer is not invoked. A structurally
// invalid document (entity range pointing at a missing entity key) is logged
// and degrades to the same sentinel; it never surfaces as a failure.
func (r *Renderer) Render(doc *domain.Document) (string, error) {
	if doc == nil || !doc.HasText() {
		return "", domain.ErrEmptyDocument
	}

	normalized := doc.Clone()
	normalized.Normalize()

	raw, err := convertDocument(&normalized)
	if err != nil {
		r.logger.Warn("document conversion failed, showing empty article", "error", err)
		return "", domain.ErrEmptyDocument
	}

	// Unconditional: raw converted HTML never reaches the display surface.
	return r.sanitizer.Sanitize(raw), nil
}

// blockTags maps block types to their wrapping element. List items are
// handled separately because consecutive items share one list element.
var blockTags = map[string]string{
	"unstyled":     "p",
	"header-one":   "h1",
	"header-two":   "h2",
	"header-three": "h3",
	"header-four":  "h4",
	"header-five":  "h5",
	"header-six":   "h6",
	"blockquote":   "blockquote",
}

func convertDocument(doc *domain.Document) (string, error) {
	var b strings.Builder
	openList := "" // "ul" or "ol" while inside a run of list items

	closeList := func() {
		if openList != "" {
			fmt.Fprintf(&b, "</%s>\n", openList)
			openList = ""
		}
	}

	for _, block := range doc.Blocks {
		inner, err := convertBlockText(block, doc.EntityMap)
		if err != nil {
			return "", err
		}

		switch block.Type {
		case "unordered-list-item", "ordered-list-item":
			list := "ul"
			if block.Type == "ordered-list-item" {
				list = "ol"
			}
			if openList != list {
				closeList()
				fmt.Fprintf(&b, "<%s>\n", list)
				openList = list
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", inner)
		case "code-block":
			closeList()
			fmt.Fprintf(&b, "<pre><code>%s</code></pre>\n", inner)
		default:
			closeList()
			tag, ok := blockTags[block.Type]
			if !ok {
				tag = "p"
			}
			fmt.Fprintf(&b, "<%s>%s</%s>\n", tag, inner, tag)
		}
	}
	closeList()

	return b.String(), nil
}

// convertBlockText splits block text at every style/entity range boundary and
// emits each segment with its escaped text and wrapping tags. Range offsets
// count UTF-16 code units.
func convertBlockText(block domain.Block, entities map[string]domain.Entity) (string, error) {
	units := utf16.Encode([]rune(block.Text))
	n := len(units)
	if n == 0 {
		return "", nil
	}

	cuts := map[int]struct{}{0: {}, n: {}}
	for _, sr := range block.InlineStyleRanges {
		lo, hi := clampRange(sr.Offset, sr.Length, n)
		cuts[lo] = struct{}{}
		cuts[hi] = struct{}{}
	}
	for _, er := range block.EntityRanges {
		lo, hi := clampRange(er.Offset, er.Length, n)
		cuts[lo] = struct{}{}
		cuts[hi] = struct{}{}
	}

	bounds := make([]int, 0, len(cuts))
	for c := range cuts {
		bounds = append(bounds, c)
	}
	sort.Ints(bounds)

	var b strings.Builder
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		seg, err := renderSegment(block, entities, units, lo, hi)
		if err != nil {
			return "", err
		}
		b.WriteString(seg)
	}
	return b.String(), nil
}

func renderSegment(block domain.Block, entities map[string]domain.Entity, units []uint16, lo, hi int) (string, error) {
	text := html.EscapeString(string(utf16.Decode(units[lo:hi])))

	// Styles wrap in a fixed order so repeated renders are byte-identical.
	for _, style := range []string{"CODE", "STRIKETHROUGH", "UNDERLINE", "ITALIC", "BOLD"} {
		if !segmentHasStyle(block, style, lo, hi, len(units)) {
			continue
		}
		switch style {
		case "BOLD":
			text = "<strong>" + text + "</strong>"
		case "ITALIC":
			text = "<em>" + text + "</em>"
		case "UNDERLINE":
			text = "<u>" + text + "</u>"
		case "STRIKETHROUGH":
			text = "<s>" + text + "</s>"
		case "CODE":
			text = "<code>" + text + "</code>"
		}
	}

	for _, er := range block.EntityRanges {
		elo, ehi := clampRange(er.Offset, er.Length, len(units))
		if lo < elo || hi > ehi {
			continue
		}
		entity, ok := entities[fmt.Sprintf("%d", er.Key)]
		if !ok {
			return "", fmt.Errorf("block %q references missing entity key %d", block.Key, er.Key)
		}
		if entity.Type == "LINK" {
			href, _ := entity.Data["url"].(string)
			text = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), text)
		}
		break
	}

	return text, nil
}

func segmentHasStyle(block domain.Block, style string, lo, hi, n int) bool {
	for _, sr := range block.InlineStyleRanges {
		if sr.Style != style {
			continue
		}
		slo, shi := clampRange(sr.Offset, sr.Length, n)
		if lo >= slo && hi <= shi {
			return true
		}
	}
	return false
}

func clampRange(offset, length, n int) (int, int) {
	lo := offset
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	hi := lo + length
	if length < 0 {
		hi = lo
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
