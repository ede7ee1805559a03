package core

import "fmt"

// =============================================================================
// Blocks
// =============================================================================

// BlockKind identifies the content of a Block.
type BlockKind string

// Block kinds understood by the renderers.
const (
	BlockMarkdown  BlockKind = "markdown"
	BlockCode      BlockKind = "code"
	BlockTable     BlockKind = "table"
	BlockAccordion BlockKind = "accordion"
	BlockDivider   BlockKind = "divider"
	BlockNotice    BlockKind = "notice"
)

// Block is a single piece of section content.
// Which fields are meaningful depends on Kind:
//   - markdown, notice: Text
//   - code: Text, Language (empty for plain text)
//   - table: Table, Title (caption)
//   - accordion: Title, Open, Children
//   - divider: nothing
type Block struct {
	Kind     BlockKind    `json:"kind" yaml:"kind"`
	Text     string       `json:"text,omitempty" yaml:"text,omitempty"`
	Language string       `json:"language,omitempty" yaml:"language,omitempty"`
	Title    string       `json:"title,omitempty" yaml:"title,omitempty"`
	Open     bool         `json:"open,omitempty" yaml:"open,omitempty"`
	Table    *SampleTable `json:"table,omitempty" yaml:"table,omitempty"`
	Children []Block      `json:"children,omitempty" yaml:"children,omitempty"`
}

// Validate checks the block and its children.
func (b Block) Validate() error {
	switch b.Kind {
	case BlockMarkdown, BlockNotice, BlockCode, BlockDivider:
		return nil
	case BlockTable:
		if b.Table == nil {
			return fmt.Errorf("%w: table block without a table", ErrInvalidBlock)
		}
		return b.Table.Validate()
	case BlockAccordion:
		if b.Title == "" {
			return fmt.Errorf("%w: accordion without a title", ErrInvalidBlock)
		}
		for i, c := range b.Children {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("accordion %q block %d: %w", b.Title, i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidBlock, b.Kind)
	}
}

// =============================================================================
// Sections
// =============================================================================

// Section is a named tab holding an ordered list of blocks.
type Section struct {
	Name   string  `json:"name" yaml:"name"`
	Slug   string  `json:"slug" yaml:"slug"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Walk visits every block in document order, depth first.
// Returning false from fn stops the walk.
func (s Section) Walk(fn func(b Block, depth int) bool) {
	walkBlocks(s.Blocks, 0, fn)
}

func walkBlocks(blocks []Block, depth int, fn func(Block, int) bool) bool {
	for _, b := range blocks {
		if !fn(b, depth) {
			return false
		}
		if len(b.Children) > 0 && !walkBlocks(b.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// BlocksOfKind returns the top-level blocks of the given kind, in order.
func (s Section) BlocksOfKind(kind BlockKind) []Block {
	var out []Block
	for _, b := range s.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Tables returns every table referenced by the section, in document order.
func (s Section) Tables() []*SampleTable {
	var out []*SampleTable
	s.Walk(func(b Block, _ int) bool {
		if b.Kind == BlockTable && b.Table != nil {
			out = append(out, b.Table)
		}
		return true
	})
	return out
}

// =============================================================================
// ViewTree
// =============================================================================

// ViewTree is the complete page handed to a rendering runtime.
type ViewTree struct {
	Title    string    `json:"title" yaml:"title"`
	Header   string    `json:"header,omitempty" yaml:"header,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Validate enforces the renderer contract: at least one section, every section
// named, every block well formed.
func (v *ViewTree) Validate() error {
	if v == nil || len(v.Sections) == 0 {
		return ErrEmptyView
	}
	for i, s := range v.Sections {
		if s.Name == "" {
			return fmt.Errorf("section %d: %w", i, ErrUnnamedSection)
		}
		for j, b := range s.Blocks {
			if err := b.Validate(); err != nil {
				return fmt.Errorf("section %q block %d: %w", s.Name, j, err)
			}
		}
	}
	return nil
}

// Section returns the section with the given slug.
func (v *ViewTree) Section(slug string) (Section, bool) {
	for _, s := range v.Sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

// SectionNames returns section names in display order.
func (v *ViewTree) SectionNames() []string {
	names := make([]string, len(v.Sections))
	for i, s := range v.Sections {
		names[i] = s.Name
	}
	return names
}
