package tuio

import "github.com/halvarsson/go-tuio/internal/profile"

// The nine profile variants and their concrete entity types. These are
// type aliases onto internal/profile so the wire-format and diff logic
// lives in one place, while callers of this package never need to import
// an internal path to work with the values their Listener receives.
type (
	Family = profile.Family
	Dim    = profile.Dim
	Kind   = profile.Kind
	Entity = profile.Entity

	Cursor2D  = profile.Cursor2D
	Cursor25D = profile.Cursor25D
	Cursor3D  = profile.Cursor3D

	Object2D  = profile.Object2D
	Object25D = profile.Object25D
	Object3D  = profile.Object3D

	Blob2D  = profile.Blob2D
	Blob25D = profile.Blob25D
	Blob3D  = profile.Blob3D

	ErrArgCount = profile.ErrArgCount
)

const (
	FamilyCursor = profile.Cursor
	FamilyObject = profile.Object
	FamilyBlob   = profile.Blob

	Dim2D  = profile.Dim2D
	Dim25D = profile.Dim25D
	Dim3D  = profile.Dim3D
)

var (
	KindCursor2D  = profile.KindCursor2D
	KindCursor25D = profile.KindCursor25D
	KindCursor3D  = profile.KindCursor3D
	KindObject2D  = profile.KindObject2D
	KindObject25D = profile.KindObject25D
	KindObject3D  = profile.KindObject3D
	KindBlob2D    = profile.KindBlob2D
	KindBlob25D   = profile.KindBlob25D
	KindBlob3D    = profile.KindBlob3D

	// AllKinds enumerates the nine variants in a stable order.
	AllKinds = profile.AllKinds
)
