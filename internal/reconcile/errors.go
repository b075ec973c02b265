package reconcile

import "errors"

var (
	// errMissingType is returned when a TUIO message has no type argument
	// ("alive"/"set"/"fseq"/"source") at all.
	errMissingType = errors.New("tuio message missing type argument")

	// errMalformedSet is returned when a set message's session id or
	// argument list does not parse, separately from the entity-specific
	// profile.ErrArgCount case.
	errMalformedSet = errors.New("tuio set message malformed")
)
