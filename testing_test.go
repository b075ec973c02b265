package tuio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockListenerRecordsCalls(t *testing.T) {
	m := NewMockListener()

	c := &Cursor2D{}
	m.AddTuioCursor(c)
	m.UpdateTuioCursor(c)
	m.RemoveTuioCursor(c)
	m.Refresh(1.5)
	m.Refresh(2.5)

	counts := m.CallCounts()
	assert.Equal(t, 1, counts["add_cursor"])
	assert.Equal(t, 1, counts["update_cursor"])
	assert.Equal(t, 1, counts["remove_cursor"])
	assert.Equal(t, 2, counts["refresh"])
	assert.Equal(t, 2.5, m.LastFrameTime())
	assert.Len(t, m.AddedCursors(), 1)
}

func TestMockListenerReset(t *testing.T) {
	m := NewMockListener()
	m.AddTuioObject(&Object2D{})
	m.Reset()
	assert.Equal(t, 0, m.CallCounts()["add_object"])
	assert.Empty(t, m.AddedObjects())
}
