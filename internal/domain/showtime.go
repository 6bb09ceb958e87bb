package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02 15:04"
)

// Showtime schedules a movie into an auditorium at one instant. RemainingSeats
// is the single mutable source of truth for capacity: the seat total fixed at
// creation is always RemainingSeats plus the seats of the bookings that
// reference the showtime.
type Showtime struct {
	ID             string
	MovieID        string
	AuditoriumID   string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	RemainingSeats int
	BasePrice      decimal.Decimal
}

func (s Showtime) StartTime() (time.Time, error) {
	return time.Parse(TimestampLayout, s.Date+" "+s.Time)
}

type ShowtimeCodec struct{}

func (ShowtimeCodec) Header() []string {
	return []string{"show_id", "movie_id", "aud_id", "date", "time", "remaining_seats", "base_price"}
}

func (ShowtimeCodec) Fields(s Showtime) []string {
	return []string{
		s.ID,
		s.MovieID,
		s.AuditoriumID,
		s.Date,
		s.Time,
		strconv.Itoa(s.RemainingSeats),
		s.BasePrice.String(),
	}
}

func (c ShowtimeCodec) Parse(fields []string) (Showtime, error) {
	if len(fields) != len(c.Header()) {
		return Showtime{}, fmt.Errorf("showtime row has %d fields, want %d", len(fields), len(c.Header()))
	}

	seats, err := strconv.Atoi(fields[5])
	if err != nil {
		return Showtime{}, fmt.Errorf("showtime remaining_seats %q is not numeric", fields[5])
	}

	price, err := decimal.NewFromString(fields[6])
	if err != nil {
		return Showtime{}, fmt.Errorf("showtime base_price %q is not numeric", fields[6])
	}

	return Showtime{
		ID:             fields[0],
		MovieID:        fields[1],
		AuditoriumID:   fields[2],
		Date:           fields[3],
		Time:           fields[4],
		RemainingSeats: seats,
		BasePrice:      price,
	}, nil
}
