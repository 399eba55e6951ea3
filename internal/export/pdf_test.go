package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/nest"
)

func testSheets() []*nest.Sheet {
	a := &nest.Part{Name: "a", Width: 100, Height: 80,
		Shapes: []canvas.Shape{canvas.Rect{W: 100, H: 80, Tag: canvas.Cut}}}
	b := &nest.Part{Name: "b", Width: 60, Height: 40,
		Shapes: []canvas.Shape{canvas.Rect{W: 60, H: 40, Tag: canvas.Cut}}}

	s1 := nest.NewSheet("sheet_3mm", 790, 384, 3)
	s1.Place("A (3mm)", a, 0, 0)
	s1.Place("B (3mm)", b, 103, 0)
	s1.CheckFit()

	s2 := nest.NewSheet("sheet_5mm", 790, 384, 5)
	s2.Place("A (5mm)", a, 0, 0)
	s2.CheckFit()

	return []*nest.Sheet{s1, s2}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.pdf")
	require.NoError(t, ExportPDF(path, testSheets()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_NoSheets(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "review.pdf"), nil)
	assert.Error(t, err)
}

func TestUsedFraction(t *testing.T) {
	s := nest.NewSheet("test", 100, 100, 3)
	s.Place("A", &nest.Part{Width: 50, Height: 50}, 0, 0)
	assert.InDelta(t, 0.25, usedFraction(s), 1e-9)
}

func TestLabelFontSize(t *testing.T) {
	assert.Equal(t, 8.0, labelFontSize(50, 45))
	assert.Equal(t, 7.0, labelFontSize(30, 25))
	assert.Equal(t, 6.0, labelFontSize(18, 10))
}
