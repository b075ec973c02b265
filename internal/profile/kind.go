// Package profile implements the nine TUIO profile variants (C2 in
// SPEC_FULL.md): Cursor, Object, and Blob, each in 2D, 2.5D, and 3D form.
//
// Each variant is a concrete struct rather than one generic shape built
// from a shared Kinematics type, because the wire orderings of their `set`
// arguments differ enough that one struct per shape reads more clearly
// than a composed one — see SPEC_FULL.md §3.
package profile

import "fmt"

// Family is the entity family: cursor, object, or blob.
type Family int

const (
	Cursor Family = iota
	Object
	Blob
)

func (f Family) String() string {
	switch f {
	case Cursor:
		return "cursor"
	case Object:
		return "object"
	case Blob:
		return "blob"
	default:
		return "unknown"
	}
}

// Dim is the spatial dimensionality of a profile variant.
type Dim int

const (
	Dim2D Dim = iota
	Dim25D
	Dim3D
)

func (d Dim) String() string {
	switch d {
	case Dim2D:
		return "2D"
	case Dim25D:
		return "2.5D"
	case Dim3D:
		return "3D"
	default:
		return "?"
	}
}

// Kind identifies one of the nine profile variants.
type Kind struct {
	Family Family
	Dim    Dim
}

func (k Kind) String() string {
	return fmt.Sprintf("%s/%s", k.Family, k.Dim)
}

// Address returns the stable OSC address prefix for this variant, per the
// table in SPEC_FULL.md §3.
func (k Kind) Address() string {
	switch k {
	case KindCursor2D:
		return "/tuio/2Dcur"
	case KindCursor25D:
		return "/tuio/25Dcur"
	case KindCursor3D:
		return "/tuio/3Dcur"
	case KindObject2D:
		return "/tuio/2Dobj"
	case KindObject25D:
		return "/tuio/25Dobj"
	case KindObject3D:
		return "/tuio/3Dobj"
	case KindBlob2D:
		return "/tuio/2Dblb"
	case KindBlob25D:
		return "/tuio/25Dblb"
	case KindBlob3D:
		return "/tuio/3Dblb"
	default:
		return ""
	}
}

// The nine closed-set profile variants.
var (
	KindCursor2D  = Kind{Cursor, Dim2D}
	KindCursor25D = Kind{Cursor, Dim25D}
	KindCursor3D  = Kind{Cursor, Dim3D}
	KindObject2D  = Kind{Object, Dim2D}
	KindObject25D = Kind{Object, Dim25D}
	KindObject3D  = Kind{Object, Dim3D}
	KindBlob2D    = Kind{Blob, Dim2D}
	KindBlob25D   = Kind{Blob, Dim25D}
	KindBlob3D    = Kind{Blob, Dim3D}
)

// AllKinds enumerates the nine variants in a stable order, used by
// components that must iterate every profile table (e.g. the exporter).
var AllKinds = []Kind{
	KindCursor2D, KindCursor25D, KindCursor3D,
	KindObject2D, KindObject25D, KindObject3D,
	KindBlob2D, KindBlob25D, KindBlob3D,
}

// Entity is the capability set every profile variant implements: read its
// session id and kind, apply a decoded `set` argument vector, and
// serialize itself back into `set` argument order for the sender.
type Entity interface {
	SessionID() uint32
	Kind() Kind
	// Apply overwrites the entity's attributes from a `set` message's
	// argument vector (with the literal "set" tag and session id already
	// stripped). Returns ErrArgCount if len(args) doesn't match the
	// variant's wire shape.
	Apply(args []float32) error
	// SetArgs returns the entity's attributes in `set` wire order (without
	// the "set" tag, session id, or class_id), for the sender. All values
	// here are OSC-encoded as float32.
	SetArgs() []float32
}

// ClassIDProvider is implemented by the Object profile variants, whose
// `set` wire format carries class_id as its first argument with OSC type
// int32 rather than folding it into SetArgs's float32 vector (spec.md's
// wire format table and original_source/pythontuio/tuio_profiles.py's
// int(self.class_id) cast both require it).
type ClassIDProvider interface {
	ClassIDArg() int32
}

// NewEntity constructs a zero-valued entity of the given kind with the
// given session id, with class_id defaulting to -1 for Object variants
// (per original_source/pythontuio/tuio_profiles.py's Object.__init__).
func NewEntity(k Kind, sessionID uint32) Entity {
	switch k {
	case KindCursor2D:
		return &Cursor2D{sessionID: sessionID}
	case KindCursor25D:
		return &Cursor25D{sessionID: sessionID}
	case KindCursor3D:
		return &Cursor3D{sessionID: sessionID}
	case KindObject2D:
		return &Object2D{sessionID: sessionID, ClassID: -1}
	case KindObject25D:
		return &Object25D{sessionID: sessionID, ClassID: -1}
	case KindObject3D:
		return &Object3D{sessionID: sessionID, ClassID: -1}
	case KindBlob2D:
		return &Blob2D{sessionID: sessionID}
	case KindBlob25D:
		return &Blob25D{sessionID: sessionID}
	case KindBlob3D:
		return &Blob3D{sessionID: sessionID}
	default:
		return nil
	}
}

// ErrArgCount is returned by Apply when the argument vector doesn't match
// the variant's expected wire shape.
type ErrArgCount struct {
	Kind     Kind
	Expected int
	Got      int
}

func (e *ErrArgCount) Error() string {
	return fmt.Sprintf("profile %s: expected %d set arguments, got %d", e.Kind, e.Expected, e.Got)
}
