package services

import "errors"

// Domain error taxonomy. Controllers map these to HTTP statuses with
// errors.Is; anything not in this list is an internal error.
var (
	// ErrNotFound covers missing records and records hidden from the caller's
	// role (a pending hotel is "not found" to the public).
	ErrNotFound = errors.New("not found")

	// ErrNotOwner means the caller is authenticated but does not own the
	// resource it is trying to mutate.
	ErrNotOwner = errors.New("not the owner of this resource")

	// ErrRoomConflict means the requested range overlaps an active booking.
	// Never resolved silently; the caller picks different dates or rooms.
	ErrRoomConflict = errors.New("room is already occupied for the selected dates")

	// ErrHotelNotBookable means a booking was attempted against a hotel that
	// is not published.
	ErrHotelNotBookable = errors.New("hotel is not open for booking")

	// ErrInvalidTransition means the lifecycle action is not permitted from
	// the hotel's current status.
	ErrInvalidTransition = errors.New("invalid hotel status transition")

	// ErrReasonRequired means a rejection was submitted without a reason.
	ErrReasonRequired = errors.New("rejection reason is required")

	// ErrBookingCompleted means a completed stay can no longer be cancelled.
	ErrBookingCompleted = errors.New("cannot cancel a completed booking")

	ErrInvalidScore       = errors.New("score must be between 0 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
)
