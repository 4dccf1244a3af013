package domain

// Document is a stored structured rich-text document: an ordered sequence of
// content blocks plus an entity map for inline links and embeds. It mirrors
// the serialized content model of a block-based editor.
type Document struct {
	Blocks    []Block           `json:"blocks"`
	EntityMap map[string]Entity `json:"entityMap"`
}

// Block is one content block with its inline style and entity ranges.
type Block struct {
	Key               string         `json:"key"`
	Text              string         `json:"text"`
	Type              string         `json:"type"`
	Depth             int            `json:"depth"`
	InlineStyleRanges []StyleRange   `json:"inlineStyleRanges"`
	EntityRanges      []EntityRange  `json:"entityRanges"`
	Data              map[string]any `json:"data,omitempty"`
}

// StyleRange marks a run of text carrying one inline style.
// Offsets and lengths count UTF-16 code units, as emitted by the editor.
type StyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// EntityRange marks a run of text bound to an entity map key.
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// Entity is an entity map value: a typed payload for links and embeds.
type Entity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// Normalize replaces an absent entity map with an empty one. A document
// received without the field is a valid empty-entity document, not a
// malformed one.
func (d *Document) Normalize() {
	if d.EntityMap == nil {
		d.EntityMap = map[string]Entity{}
	}
}

// HasText reports whether any block carries text.
func (d *Document) HasText() bool {
	for _, b := range d.Blocks {
		if b.Text != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{}
	if d.Blocks != nil {
		out.Blocks = make([]Block, len(d.Blocks))
		for i, b := range d.Blocks {
			nb := b
			if b.InlineStyleRanges != nil {
				nb.InlineStyleRanges = append([]StyleRange(nil), b.InlineStyleRanges...)
			}
			if b.EntityRanges != nil {
				nb.EntityRanges = append([]EntityRange(nil), b.EntityRanges...)
			}
			out.Blocks[i] = nb
		}
	}
	if d.EntityMap != nil {
		out.EntityMap = make(map[string]Entity, len(d.EntityMap))
		for k, v := range d.EntityMap {
			out.EntityMap[k] = v
		}
	}
	return out
}
