package tuio

import "sync"

// MockListener records every callback it receives, for verification in
// tests that exercise a Server or Dispatcher end to end.
//
// Grounded on the teacher's MockBackend: a mutex-guarded struct tracking
// call counts and the last-seen arguments per method, plus Reset and
// CallCounts helpers for assertions.
type MockListener struct {
	mu sync.Mutex

	addedCursor   []Entity
	updatedCursor []Entity
	removedCursor []Entity

	addedObject   []Entity
	updatedObject []Entity
	removedObject []Entity

	addedBlob   []Entity
	updatedBlob []Entity
	removedBlob []Entity

	refreshCalls  int
	lastFrameTime float64
}

// NewMockListener creates an empty MockListener.
func NewMockListener() *MockListener {
	return &MockListener{}
}

func (m *MockListener) AddTuioCursor(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addedCursor = append(m.addedCursor, e)
}

func (m *MockListener) UpdateTuioCursor(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatedCursor = append(m.updatedCursor, e)
}

func (m *MockListener) RemoveTuioCursor(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedCursor = append(m.removedCursor, e)
}

func (m *MockListener) AddTuioObject(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addedObject = append(m.addedObject, e)
}

func (m *MockListener) UpdateTuioObject(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatedObject = append(m.updatedObject, e)
}

func (m *MockListener) RemoveTuioObject(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedObject = append(m.removedObject, e)
}

func (m *MockListener) AddTuioBlob(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addedBlob = append(m.addedBlob, e)
}

func (m *MockListener) UpdateTuioBlob(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatedBlob = append(m.updatedBlob, e)
}

func (m *MockListener) RemoveTuioBlob(e Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedBlob = append(m.removedBlob, e)
}

func (m *MockListener) Refresh(frameTime float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCalls++
	m.lastFrameTime = frameTime
}

// AddedCursors returns every cursor entity passed to AddTuioCursor, in
// call order.
func (m *MockListener) AddedCursors() []Entity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entity, len(m.addedCursor))
	copy(out, m.addedCursor)
	return out
}

// AddedObjects returns every object entity passed to AddTuioObject, in
// call order.
func (m *MockListener) AddedObjects() []Entity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entity, len(m.addedObject))
	copy(out, m.addedObject)
	return out
}

// CallCounts returns the number of times each dispatch method has fired.
func (m *MockListener) CallCounts() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]int{
		"add_cursor":    len(m.addedCursor),
		"update_cursor": len(m.updatedCursor),
		"remove_cursor": len(m.removedCursor),
		"add_object":    len(m.addedObject),
		"update_object": len(m.updatedObject),
		"remove_object": len(m.removedObject),
		"add_blob":      len(m.addedBlob),
		"update_blob":   len(m.updatedBlob),
		"remove_blob":   len(m.removedBlob),
		"refresh":       m.refreshCalls,
	}
}

// RefreshCalls returns the number of times Refresh fired.
func (m *MockListener) RefreshCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCalls
}

// LastFrameTime returns the frame_time argument of the most recent
// Refresh call.
func (m *MockListener) LastFrameTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFrameTime
}

// Reset clears all recorded calls.
func (m *MockListener) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addedCursor, m.updatedCursor, m.removedCursor = nil, nil, nil
	m.addedObject, m.updatedObject, m.removedObject = nil, nil, nil
	m.addedBlob, m.updatedBlob, m.removedBlob = nil, nil, nil
	m.refreshCalls = 0
	m.lastFrameTime = 0
}

var _ Listener = (*MockListener)(nil)
