package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *ViewTree {
	tbl := NewSampleTable("T", []string{"A"}, Row{Num(1)}, Row{Num(2)})
	return &ViewTree{
		Title: "Demo",
		Sections: []Section{
			{
				Name: "First",
				Slug: "first",
				Blocks: []Block{
					{Kind: BlockMarkdown, Text: "intro"},
					{Kind: BlockAccordion, Title: "Example 1", Open: true, Children: []Block{
						{Kind: BlockCode, Text: "SELECT 1", Language: "sql"},
						{Kind: BlockTable, Table: tbl, Title: "nested"},
					}},
					{Kind: BlockDivider},
				},
			},
			{
				Name:   "Second",
				Slug:   "second",
				Blocks: []Block{{Kind: BlockTable, Table: tbl, Title: "top"}},
			},
		},
	}
}

func TestViewTree_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *ViewTree)
		wantErr error
	}{
		{name: "valid tree", mutate: func(*ViewTree) {}},
		{name: "no sections", mutate: func(v *ViewTree) { v.Sections = nil }, wantErr: ErrEmptyView},
		{name: "unnamed section", mutate: func(v *ViewTree) { v.Sections[1].Name = "" }, wantErr: ErrUnnamedSection},
		{
			name:    "accordion without title",
			mutate:  func(v *ViewTree) { v.Sections[0].Blocks[1].Title = "" },
			wantErr: ErrInvalidBlock,
		},
		{
			name:    "table block without table",
			mutate:  func(v *ViewTree) { v.Sections[1].Blocks[0].Table = nil },
			wantErr: ErrInvalidBlock,
		},
		{
			name:    "unknown kind",
			mutate:  func(v *ViewTree) { v.Sections[0].Blocks[2].Kind = "video" },
			wantErr: ErrInvalidBlock,
		},
		{
			name: "malformed nested table",
			mutate: func(v *ViewTree) {
				v.Sections[0].Blocks[1].Children[1].Table = NewSampleTable("bad", []string{"A"}, Row{})
			},
			wantErr: ErrInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sampleTree()
			tt.mutate(v)
			err := v.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestViewTree_NilIsEmpty(t *testing.T) {
	var v *ViewTree
	assert.ErrorIs(t, v.Validate(), ErrEmptyView)
}

func TestSection_Walk(t *testing.T) {
	s := sampleTree().Sections[0]

	var kinds []BlockKind
	var depths []int
	s.Walk(func(b Block, depth int) bool {
		kinds = append(kinds, b.Kind)
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []BlockKind{BlockMarkdown, BlockAccordion, BlockCode, BlockTable, BlockDivider}, kinds)
	assert.Equal(t, []int{0, 0, 1, 1, 0}, depths)
}

func TestSection_WalkStops(t *testing.T) {
	s := sampleTree().Sections[0]
	count := 0
	s.Walk(func(b Block, _ int) bool {
		count++
		return b.Kind != BlockAccordion
	})
	assert.Equal(t, 2, count)
}

func TestSection_Tables(t *testing.T) {
	tree := sampleTree()
	assert.Len(t, tree.Sections[0].Tables(), 1)
	assert.Len(t, tree.Sections[1].Tables(), 1)
	assert.Len(t, tree.Sections[0].BlocksOfKind(BlockAccordion), 1)
}

func TestViewTree_Section(t *testing.T) {
	tree := sampleTree()

	s, ok := tree.Section("second")
	require.True(t, ok)
	assert.Equal(t, "Second", s.Name)

	_, ok = tree.Section("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"First", "Second"}, tree.SectionNames())
}
