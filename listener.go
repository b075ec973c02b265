package tuio

// Listener is the capability set a caller implements to receive TUIO
// events: ten operations, fired in the fixed order documented on
// dispatch.Dispatcher.Dispatch — all adds, then all updates, then all
// removes, then refresh, once per frame.
//
// Each Add/Update/Remove method receives the concrete entity value for
// its family (Cursor2D, Object25D, Blob3D, ...); type-assert on Entity to
// recover the dimensionality.
//
// Replaces the source's listener abstract-base-class pattern (spec.md §9
// Design Notes): embed BaseListener to get no-op defaults for whichever
// of the ten methods a particular listener doesn't care about.
type Listener interface {
	AddTuioCursor(e Entity)
	UpdateTuioCursor(e Entity)
	RemoveTuioCursor(e Entity)

	AddTuioObject(e Entity)
	UpdateTuioObject(e Entity)
	RemoveTuioObject(e Entity)

	AddTuioBlob(e Entity)
	UpdateTuioBlob(e Entity)
	RemoveTuioBlob(e Entity)

	Refresh(frameTime float64)
}

// BaseListener implements Listener with no-op methods. Embed it in a
// listener type to override only the callbacks you need.
type BaseListener struct{}

func (BaseListener) AddTuioCursor(Entity)    {}
func (BaseListener) UpdateTuioCursor(Entity) {}
func (BaseListener) RemoveTuioCursor(Entity) {}

func (BaseListener) AddTuioObject(Entity)    {}
func (BaseListener) UpdateTuioObject(Entity) {}
func (BaseListener) RemoveTuioObject(Entity) {}

func (BaseListener) AddTuioBlob(Entity)    {}
func (BaseListener) UpdateTuioBlob(Entity) {}
func (BaseListener) RemoveTuioBlob(Entity) {}

func (BaseListener) Refresh(float64) {}

var _ Listener = BaseListener{}
