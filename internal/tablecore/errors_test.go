package tablecore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindDecodeError:      "DecodeError",
		KindEmptyPage:        "EmptyPage",
		KindDegenerateRegion: "DegenerateRegion",
		KindExportError:      "ExportError",
		Kind(99):             "Unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestNewCoreError(t *testing.T) {
	cause := errors.New("boom")
	err := NewCoreError(KindDecodeError, cause)

	assert.Equal(t, KindDecodeError, err.Kind)
	assert.Equal(t, "DecodeError: boom", err.Error())
	assert.Equal(t, "boom", err.Unwrap().Error())
}

func TestWrapf(t *testing.T) {
	err := Wrapf(KindDegenerateRegion, "region %d has %d rows", 3, 1)

	assert.Equal(t, KindDegenerateRegion, err.Kind)
	assert.Equal(t, "DegenerateRegion: region 3 has 1 rows", err.Error())
}

func TestCoreErrorUnwrapWorksWithErrorsIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewCoreError(KindExportError, sentinel)

	assert.True(t, errors.Is(err, sentinel))
}
