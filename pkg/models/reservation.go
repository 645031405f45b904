package models

import (
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/reservation"
)

// CreateReservationRequest books a table slot. TableNumber zero means
// auto-select the lowest-numbered free table with capacity.
type CreateReservationRequest struct {
	BusinessID      string `json:"business_id"`
	OwnerUserID     string `json:"owner_user_id"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerName    string `json:"customer_name"`
	ReservationDate string `json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string `json:"reservation_time"` // HH:MM
	NumberOfGuests  *int   `json:"number_of_guests,omitempty"`
	TableNumber     int    `json:"table_number,omitempty"`
	PositionPref    string `json:"position_pref,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// SlotQuery asks which tables are free for one (owner, date, time) slot.
type SlotQuery struct {
	OwnerUserID  string `json:"owner_user_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Guests       *int   `json:"guests,omitempty"`
	PositionPref string `json:"position_pref,omitempty"`
}

// ReservationFilters contains filtering options for listing reservations.
type ReservationFilters struct {
	BusinessID    string             `json:"business_id,omitempty"`
	OwnerUserID   string             `json:"owner_user_id,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Date          string             `json:"date,omitempty"`
	Status        reservation.Status `json:"status,omitempty"`
	Limit         int                `json:"limit,omitempty"`
	Offset        int                `json:"offset,omitempty"`
}

// ReservationListResponse contains a paginated reservation list.
type ReservationListResponse struct {
	Reservations []*ent.Reservation `json:"reservations"`
	TotalCount   int                `json:"total_count"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
}

// AddReservationItemRequest pre-orders an item alongside a reservation.
type AddReservationItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}
