package services

import (
	"estay-backend/models"
)

// Occupancy is one active booking's claim on a room type, exposed for
// display when the client browses without dates.
type Occupancy struct {
	BookingID uint             `json:"bookingId"`
	Range     models.DateRange `json:"range"`
}

// RoomTypeView is the room type as returned to search and detail requests,
// annotated with its current occupancies.
type RoomTypeView struct {
	models.RoomType
	Occupancies []Occupancy `json:"occupancies,omitempty"`
}

// FilterRoomTypes produces the room-type view for one hotel.
//
// With no requested range it is informational: every room type comes back,
// annotated with its active occupancies. With a range it is a filter: room
// types with any overlapping active booking are dropped from the result
// entirely. Cancelled bookings never occupy, so a range matching a cancelled
// stay is available again.
func FilterRoomTypes(roomTypes []models.RoomType, active []models.Booking, requested *models.DateRange) []RoomTypeView {
	byRoomType := make(map[uint][]models.Booking, len(roomTypes))
	for _, b := range active {
		byRoomType[b.RoomTypeID] = append(byRoomType[b.RoomTypeID], b)
	}

	views := make([]RoomTypeView, 0, len(roomTypes))
	for _, rt := range roomTypes {
		occupying := byRoomType[rt.ID]

		if requested == nil {
			view := RoomTypeView{RoomType: rt}
			for _, b := range occupying {
				view.Occupancies = append(view.Occupancies, Occupancy{BookingID: b.ID, Range: b.Range()})
			}
			views = append(views, view)
			continue
		}

		conflict := false
		for _, b := range occupying {
			if b.Range().Overlaps(*requested) {
				conflict = true
				break
			}
		}
		if !conflict {
			views = append(views, RoomTypeView{RoomType: rt})
		}
	}
	return views
}
