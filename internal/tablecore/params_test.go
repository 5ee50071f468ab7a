package tablecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayoutParams(t *testing.T) {
	got := DefaultLayoutParams()

	assert.Equal(t, 5.0, got.MaxCharSpace)
	assert.Equal(t, -0.3, got.MaxLineSpace)
	assert.Equal(t, 7.0, got.DotLeaderGap)
	assert.Equal(t, 3, got.DotLeaderMinRun)
	assert.Equal(t, 5.0, got.CollapseHeight)
	assert.Equal(t, 3.0, got.TwoColumnStripWidth)
	assert.Equal(t, 0.05, got.TwoColumnHeightFraction)
	assert.Equal(t, 2, got.OneColumnMinCount)
	assert.Equal(t, 3.0, got.OneColumnStripMargin)
	assert.Equal(t, 0.30, got.OneColumnHeightFraction)
	assert.Equal(t, 5.0, got.BottomThreshold)
	assert.Equal(t, 4.0, got.TopThreshold)
	assert.Equal(t, 5.0, got.LeftThreshold)
	assert.Equal(t, 2.0, got.RightThreshold)
	assert.Equal(t, 5.0, got.MergeSlack)
	assert.Equal(t, 0.01, got.HeaderMinTopFraction)
	assert.Equal(t, 0.90, got.HeaderMaxBottomFraction)
	assert.Equal(t, 0.30, got.HeaderMinWidthFraction)
	assert.Equal(t, 0.075, got.CaptionLeadingFraction)
	assert.Equal(t, 0.20, got.CaptionCenterTolerance)
	assert.Equal(t, 1.5, got.ContinuationGapMultiplier)
	assert.Equal(t, 0.30, got.ContinuationCenterTolerance)
	assert.Equal(t, 0.2, got.ShrinkPaddingX)
	assert.Equal(t, 0.5, got.ShrinkPaddingY)
	assert.False(t, got.SeparateUnits)
	assert.Equal(t, 3, got.MaxFootnoteRetries)
	assert.Equal(t, 5.0, got.FootnoteRetryStep)
	assert.Equal(t, 1.0, got.SeparatorMergeMargin)
}

func TestDefaultLayoutParamsIndependentCopies(t *testing.T) {
	a := DefaultLayoutParams()
	b := DefaultLayoutParams()
	a.MaxCharSpace = 99
	assert.Equal(t, 5.0, b.MaxCharSpace)
}
