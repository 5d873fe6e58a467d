package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/zvrva/flightlog/internal/domain"
)

const dateLayout = "2006-01-02"

// csvRow mirrors the upload's header names exactly; csvutil maps columns to
// fields by tag, so a reordered file still decodes correctly.
type csvRow struct {
	Date         string `csv:"Date"`
	FlightNumber string `csv:"Flight number"`
	From         string `csv:"From"`
	To           string `csv:"To"`
	DepTime      string `csv:"Dep time"`
	ArrTime      string `csv:"Arr time"`
	Duration     string `csv:"Duration"`
	Airline      string `csv:"Airline"`
	Aircraft     string `csv:"Aircraft"`
	Registration string `csv:"Registration"`
	SeatNumber   string `csv:"Seat number"`
	SeatType     string `csv:"Seat type"`
	FlightClass  string `csv:"Flight class"`
	FlightReason string `csv:"Flight reason"`
	Note         string `csv:"Note"`
}

// requiredHeaders gate the whole import: a file missing any of them is
// rejected before the first data row is read.
var requiredHeaders = []string{"Date", "Flight number", "From", "To", "Airline"}

// normalizeRow turns one decoded row into a Flight candidate, or a RowError
// naming the offending line. Exactly one of the two is returned. A row fails
// only on an unparseable date or an empty required field; a missing airport
// code is a normal outcome and leaves FromCode/ToCode empty.
func normalizeRow(row csvRow, line int, ownerID string) (*domain.Flight, *domain.RowError) {
	fail := func(reason string) (*domain.Flight, *domain.RowError) {
		return nil, &domain.RowError{Row: line, Reason: reason}
	}

	dateText := strings.TrimSpace(row.Date)
	if dateText == "" {
		return fail("missing date")
	}
	date, err := time.Parse(dateLayout, dateText)
	if err != nil {
		return fail("unparseable date " + strconv.Quote(dateText))
	}

	flightNumber := strings.TrimSpace(row.FlightNumber)
	from := strings.TrimSpace(row.From)
	to := strings.TrimSpace(row.To)
	airline := strings.TrimSpace(row.Airline)
	switch {
	case flightNumber == "":
		return fail("missing flight number")
	case from == "":
		return fail("missing origin")
	case to == "":
		return fail("missing destination")
	case airline == "":
		return fail("missing airline")
	}

	flight := &domain.Flight{
		OwnerID:      ownerID,
		Date:         date,
		FlightNumber: flightNumber,
		From:         from,
		To:           to,
		Airline:      airline,
		DepTime:      strings.TrimSpace(row.DepTime),
		ArrTime:      strings.TrimSpace(row.ArrTime),
		Duration:     strings.TrimSpace(row.Duration),
		Aircraft:     strings.TrimSpace(row.Aircraft),
		Registration: strings.TrimSpace(row.Registration),
		SeatNumber:   strings.TrimSpace(row.SeatNumber),
		SeatType:     strings.TrimSpace(row.SeatType),
		FlightClass:  strings.TrimSpace(row.FlightClass),
		FlightReason: strings.TrimSpace(row.FlightReason),
		Note:         strings.TrimSpace(row.Note),
	}
	if code, ok := ExtractCode(from); ok {
		flight.FromCode = code
	}
	if code, ok := ExtractCode(to); ok {
		flight.ToCode = code
	}
	return flight, nil
}
