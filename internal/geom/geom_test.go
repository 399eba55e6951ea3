package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	o := Outline{{X: 2, Y: 3}, {X: -1, Y: 7}, {X: 5, Y: 0}}
	min, max := o.BoundingBox()
	assert.Equal(t, Point2D{X: -1, Y: 0}, min)
	assert.Equal(t, Point2D{X: 5, Y: 7}, max)
}

func TestBoundingBox_Empty(t *testing.T) {
	min, max := Outline{}.BoundingBox()
	assert.Equal(t, Point2D{}, min)
	assert.Equal(t, Point2D{}, max)
}

func TestTranslate(t *testing.T) {
	o := Outline{{X: 1, Y: 1}, {X: 2, Y: 2}}
	moved := o.Translate(10, -5)
	assert.Equal(t, Outline{{X: 11, Y: -4}, {X: 12, Y: -3}}, moved)
	// Original untouched
	assert.Equal(t, Outline{{X: 1, Y: 1}, {X: 2, Y: 2}}, o)
}

func TestArea_UnitSquare(t *testing.T) {
	o := Outline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, 1.0, o.Area(), 1e-12)
}

func TestArea_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, Outline{{X: 0, Y: 0}, {X: 1, Y: 1}}.Area())
}

func TestDedupe_RemovesConsecutiveAndClosing(t *testing.T) {
	o := Outline{
		{X: 0, Y: 0},
		{X: 0, Y: 0.0001}, // within epsilon of previous
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 0, Y: 0}, // closing duplicate
	}
	clean := o.Dedupe()
	assert.Equal(t, Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, clean)
}

func TestPointClose(t *testing.T) {
	assert.True(t, Point2D{X: 0, Y: 0}.Close(Point2D{X: 0.005, Y: 0}, 0.01))
	assert.False(t, Point2D{X: 0, Y: 0}.Close(Point2D{X: 0.02, Y: 0}, 0.01))
}
