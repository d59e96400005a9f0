package festival

import "errors"

// Error taxonomy. Every engine operation returns one of these (possibly
// wrapped) and leaves the aggregate unmodified on the error path.
var (
	// ErrInsufficientBudget means the festival cannot cover a required cost.
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrNotFound means a referenced festival, artist, vendor, or event
	// option does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means an enum value (campaign type, audience,
	// slot, crisis tier) is not in the catalog.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFestivalEnded means a mutating operation hit a festival whose
	// days remaining reached zero.
	ErrFestivalEnded = errors.New("festival has ended")

	// ErrEventResolved means a dynamic event was already resolved once.
	ErrEventResolved = errors.New("event already resolved")

	// ErrSlotTaken means the requested performance slot is held by
	// another artist.
	ErrSlotTaken = errors.New("performance slot already assigned")
)
