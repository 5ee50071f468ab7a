package tablecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBBoxNormalizesCorners(t *testing.T) {
	b := NewBBox(10, 20, 5, 15)
	assert.Equal(t, BBox{X0: 5, Top: 15, X1: 10, Bottom: 20}, b)
}

func TestBBoxWidthHeight(t *testing.T) {
	b := NewBBox(0, 0, 10, 4)
	assert.Equal(t, 10.0, b.Width())
	assert.Equal(t, 4.0, b.Height())
}

func TestBBoxEmpty(t *testing.T) {
	assert.True(t, BBox{X0: 5, X1: 5, Top: 0, Bottom: 10}.Empty())
	assert.True(t, BBox{X0: 0, X1: 10, Top: 5, Bottom: 5}.Empty())
	assert.False(t, NewBBox(0, 0, 10, 10).Empty())
}

func TestBBoxContains(t *testing.T) {
	outer := NewBBox(0, 0, 100, 100)
	inner := NewBBox(10, 10, 50, 50)
	assert.True(t, outer.Contains(inner, 0))
	assert.False(t, inner.Contains(outer, 0))

	justOutside := NewBBox(-2, -2, 50, 50)
	assert.False(t, outer.Contains(justOutside, 0))
	assert.True(t, outer.Contains(justOutside, 2))
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 30)
	got := a.Union(b)
	assert.Equal(t, BBox{X0: 0, Top: 0, X1: 20, Bottom: 30}, got)
}

func TestPageViewCropEmptyBand(t *testing.T) {
	page := PageView{Bbox: NewBBox(0, 0, 100, 100)}
	_, ok := page.Crop(NewBBox(200, 200, 300, 300))
	assert.False(t, ok)
}

func TestPageViewCropFiltersContent(t *testing.T) {
	page := PageView{
		Bbox: NewBBox(0, 0, 100, 100),
		Chars: []Char{
			{Bbox: NewBBox(5, 5, 10, 15), Text: "a"},
			{Bbox: NewBBox(60, 60, 70, 70), Text: "b"},
		},
		Lines: []RuleLine{
			{X0: 0, X1: 20, Top: 20, Bottom: 20},
			{X0: 60, X1: 90, Top: 60, Bottom: 60},
		},
	}

	cropped, ok := page.Crop(NewBBox(0, 0, 30, 30))
	require.True(t, ok)
	require.Len(t, cropped.Chars, 1)
	assert.Equal(t, "a", cropped.Chars[0].Text)
	require.Len(t, cropped.Lines, 1)
	assert.Equal(t, 20.0, cropped.Lines[0].Top)
}

func TestSortedByTopAndX0(t *testing.T) {
	chars := []Char{
		{Bbox: NewBBox(30, 10, 35, 20), Text: "c"},
		{Bbox: NewBBox(10, 30, 15, 40), Text: "a"},
		{Bbox: NewBBox(20, 5, 25, 15), Text: "b"},
	}

	byTop := SortedByTop(chars)
	require.Len(t, byTop, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{byTop[0].Text, byTop[1].Text, byTop[2].Text})

	byX0 := SortedByX0(chars)
	require.Len(t, byX0, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{byX0[0].Text, byX0[1].Text, byX0[2].Text})

	// Original slice must be untouched.
	assert.Equal(t, "c", chars[0].Text)
}
