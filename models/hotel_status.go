package models

// HotelStatus is the hotel's position in the review/publication lifecycle.
// Transitions are driven by admin actions (approve/reject/publish/offline)
// and by merchant resubmission after a rejection.
type HotelStatus string

const (
	StatusPending   HotelStatus = "pending"
	StatusApproved  HotelStatus = "approved"
	StatusRejected  HotelStatus = "rejected"
	StatusPublished HotelStatus = "published"
	StatusOffline   HotelStatus = "offline"
)

// transitions is the closed transition table. A status not present as a key
// (or a target not in its set) is an invalid transition.
var transitions = map[HotelStatus]map[HotelStatus]bool{
	StatusPending:   {StatusApproved: true, StatusRejected: true},
	StatusApproved:  {StatusApproved: true, StatusPublished: true, StatusRejected: true},
	StatusPublished: {StatusOffline: true},
	StatusOffline:   {StatusPublished: true},
	StatusRejected:  {StatusPending: true},
}

// CanTransition reports whether moving from s to target is allowed.
// Re-approving an already approved hotel is allowed (idempotent re-review).
func (s HotelStatus) CanTransition(target HotelStatus) bool {
	return transitions[s][target]
}

// Valid reports whether s is one of the five known statuses.
func (s HotelStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPublished, StatusOffline:
		return true
	}
	return false
}

// PublicVisible reports whether the hotel shows up in public search and
// detail responses. Approved hotels are listed alongside published ones;
// only published hotels accept bookings.
func (s HotelStatus) PublicVisible() bool {
	return s == StatusApproved || s == StatusPublished
}

// Bookable reports whether bookings may be created against the hotel.
func (s HotelStatus) Bookable() bool {
	return s == StatusPublished
}

// PublicStatuses is the visibility set used by search queries.
func PublicStatuses() []HotelStatus {
	return []HotelStatus{StatusApproved, StatusPublished}
}
