package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
)

func TestWriteDXF_LayersAndYFlip(t *testing.T) {
	shapes := []canvas.Shape{
		canvas.Rect{X: 10, Y: 20, W: 30, H: 40, Tag: canvas.Cut},
		canvas.Circle{CX: 50, CY: 60, R: 5, Tag: canvas.Engrave},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, shapes, 100))
	out := buf.String()

	assert.Contains(t, out, "$INSUNITS")
	assert.Equal(t, 1, strings.Count(out, "\nCIRCLE\n"))
	assert.Equal(t, 1, strings.Count(out, "\nLWPOLYLINE\n"))
	assert.Contains(t, out, "\nCUT\n")
	assert.Contains(t, out, "\nENGRAVE\n")

	// Circle center y = 100 - 60.
	assert.Contains(t, out, "40.0000")
	// Rect top edge y=20 flips to 80, bottom edge y=60 flips to 40.
	assert.Contains(t, out, "80.0000")

	// Closed rectangle: 4 vertices, closed flag set.
	i := strings.Index(out, "LWPOLYLINE")
	section := out[i:]
	assert.Contains(t, section, "  90\n4\n")
	assert.Contains(t, section, "  70\n1\n")
}

func TestWriteDXF_OpenPolylineStaysOpen(t *testing.T) {
	shapes := []canvas.Shape{
		canvas.Polyline{
			Points: geom.Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			Closed: false, Tag: canvas.Cut,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, shapes, 50))
	out := buf.String()

	assert.Contains(t, out, "  90\n3\n")
	assert.Contains(t, out, "  70\n0\n")
}

func TestWriteDXF_ClosingDuplicateIsDropped(t *testing.T) {
	// A path that repeats its first point: the duplicate becomes the closed
	// flag, not a vertex.
	shapes := []canvas.Shape{
		canvas.Polyline{
			Points: geom.Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}},
			Closed: false, Tag: canvas.Cut,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, shapes, 50))
	out := buf.String()

	assert.Contains(t, out, "  90\n3\n")
	assert.Contains(t, out, "  70\n1\n")
}

func TestWriteDXF_RoundedRectCutsCorners(t *testing.T) {
	shapes := []canvas.Shape{
		canvas.Rect{X: 0, Y: 0, W: 20, H: 10, Corner: 2, Tag: canvas.Cut},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, shapes, 10))
	out := buf.String()

	// Eight corner-cut vertices.
	assert.Contains(t, out, "  90\n8\n")
	assert.Contains(t, out, "  70\n1\n")
}

func TestWriteDXF_UnknownRoleDefaultsToCut(t *testing.T) {
	// Roles beyond the two known ones land on CUT rather than being lost.
	shapes := []canvas.Shape{
		canvas.Circle{CX: 5, CY: 5, R: 2, Tag: canvas.Role(7)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, shapes, 10))
	assert.Contains(t, buf.String(), "\nCUT\n")
}
