package domain

import "time"

// Flight is one journey segment owned by a single user. The ID is assigned
// by the repository on create. FromCode/ToCode are empty when no code could
// be extracted from the free-text airport description.
type Flight struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"-"`
	Date         time.Time `json:"date"`
	FlightNumber string    `json:"flightNumber"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	FromCode     string    `json:"fromCode,omitempty"`
	ToCode       string    `json:"toCode,omitempty"`
	DepTime      string    `json:"depTime,omitempty"`
	ArrTime      string    `json:"arrTime,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	Airline      string    `json:"airline"`
	Aircraft     string    `json:"aircraft,omitempty"`
	Registration string    `json:"registration,omitempty"`
	SeatNumber   string    `json:"seatNumber,omitempty"`
	SeatType     string    `json:"seatType,omitempty"`
	FlightClass  string    `json:"flightClass,omitempty"`
	FlightReason string    `json:"flightReason,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
