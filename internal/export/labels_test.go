package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(testSheets())
	require.Len(t, labels, 3)

	assert.Equal(t, "A (3mm)", labels[0].PartLabel)
	assert.Equal(t, 1, labels[0].SheetIndex)
	assert.Equal(t, "sheet_3mm", labels[0].SheetName)
	assert.Equal(t, 3.0, labels[0].Thickness)

	assert.Equal(t, "B (3mm)", labels[1].PartLabel)
	assert.Equal(t, 103.0, labels[1].X)

	assert.Equal(t, 2, labels[2].SheetIndex)
	assert.Equal(t, 5.0, labels[2].Thickness)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, testSheets()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportLabels_Empty(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), nil)
	assert.Error(t, err)
}
