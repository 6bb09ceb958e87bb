package domain

import (
	"fmt"
	"strconv"
)

// BookingPaid is the only persisted booking status. Cancellation removes the
// record instead of flipping a flag, so no cancelled state ever hits storage.
const BookingPaid = "PAID"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

type Booking struct {
	ID           string
	CustomerName string
	ShowtimeID   string
	SeatCount    int
	Status       string
}

type BookingCodec struct{}

func (BookingCodec) Header() []string {
	return []string{"booking_id", "customer_name", "show_id", "seat_count", "status"}
}

func (BookingCodec) Fields(b Booking) []string {
	return []string{b.ID, b.CustomerName, b.ShowtimeID, strconv.Itoa(b.SeatCount), b.Status}
}

func (c BookingCodec) Parse(fields []string) (Booking, error) {
	if len(fields) != len(c.Header()) {
		return Booking{}, fmt.Errorf("booking row has %d fields, want %d", len(fields), len(c.Header()))
	}

	seats, err := strconv.Atoi(fields[3])
	if err != nil {
		return Booking{}, fmt.Errorf("booking seat_count %q is not numeric", fields[3])
	}

	return Booking{
		ID:           fields[0],
		CustomerName: fields[1],
		ShowtimeID:   fields[2],
		SeatCount:    seats,
		Status:       fields[4],
	}, nil
}
