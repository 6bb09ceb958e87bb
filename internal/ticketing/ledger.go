package ticketing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
)

// Ledger owns booking records. Every mutating operation locks the Inventory's
// mutex for its whole critical section, because the seat decrement on the
// showtime and the booking write must land together or not at all.
type Ledger struct {
	inventory *Inventory
	bookings  store.Store[domain.Booking]
	receipts  domain.ReceiptSink
	validator *validator.Validate
	logger    *slog.Logger
}

func NewLedger(
	inventory *Inventory,
	bookings store.Store[domain.Booking],
	receipts domain.ReceiptSink,
	validator *validator.Validate,
	logger *slog.Logger) *Ledger {

	return &Ledger{
		inventory: inventory,
		bookings:  bookings,
		receipts:  receipts,
		validator: validator,
		logger:    logger,
	}
}

type CreateBookingInput struct {
	ShowtimeID   string               `validate:"required,nosep"`
	CustomerName string               `validate:"required,nosep"`
	SeatCount    int                  `validate:"gt=0"`
	Payment      domain.PaymentMethod `validate:"required,payment"`
	CardNumber   string               // required for card payments, format-checked only
}

// CreateBooking sells seats against a showtime. The payment method is
// recorded for the receipt but never charged. The seat decrement and the
// booking append happen under one lock; if the append fails the decrement is
// rolled back, so a failed call leaves no partial state.
func (l *Ledger) CreateBooking(input CreateBookingInput) (domain.Booking, error) {
	if err := appvalidator.ToValidationError(l.validator.Struct(input)); err != nil {
		return domain.Booking{}, err
	}
	if input.Payment == domain.PaymentCard {
		if err := l.validator.Var(input.CardNumber, "required,card"); err != nil {
			return domain.Booking{}, domain.NewValidationError("CardNumber", "must match XXXX-XXXX-XXXX-XXXX")
		}
	}

	l.inventory.mu.Lock()

	showtimes, err := l.inventory.showtimes.LoadAll()
	if err != nil {
		l.inventory.mu.Unlock()
		return domain.Booking{}, err
	}

	original := make([]domain.Showtime, len(showtimes))
	copy(original, showtimes)

	showtime, ok := store.FindByKey(showtimes, showtimeID, input.ShowtimeID)
	if !ok {
		l.inventory.mu.Unlock()
		return domain.Booking{}, fmt.Errorf("showtime %s: %w", input.ShowtimeID, domain.ErrNotFound)
	}

	if _, err := adjustSeats(showtimes, input.ShowtimeID, -input.SeatCount); err != nil {
		l.inventory.mu.Unlock()
		return domain.Booking{}, err
	}

	bookings, err := l.bookings.LoadAll()
	if err != nil {
		l.inventory.mu.Unlock()
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		ID:           store.NextID(bookings, bookingID),
		CustomerName: input.CustomerName,
		ShowtimeID:   input.ShowtimeID,
		SeatCount:    input.SeatCount,
		Status:       domain.BookingPaid,
	}

	if err := l.inventory.showtimes.ReplaceAll(showtimes); err != nil {
		l.inventory.mu.Unlock()
		return domain.Booking{}, err
	}

	if err := l.bookings.Append(booking); err != nil {
		if rbErr := l.inventory.showtimes.ReplaceAll(original); rbErr != nil {
			l.logger.Error("seat rollback failed after booking write failure",
				"showtime", input.ShowtimeID, "error", rbErr)
		}
		l.inventory.mu.Unlock()
		return domain.Booking{}, err
	}

	l.inventory.mu.Unlock()

	l.logger.Info("booking created",
		"id", booking.ID,
		"showtime", booking.ShowtimeID,
		"seats", booking.SeatCount,
		"payment", string(input.Payment))

	l.issueReceipt(booking, showtime)

	return booking, nil
}

// ModifyBooking changes a booking's seat count by applying the signed delta
// to the showtime. A non-empty requester must match the booking's customer,
// case-insensitively; staff callers pass an empty requester.
func (l *Ledger) ModifyBooking(id string, newSeatCount int, requester string) (domain.Booking, error) {
	if newSeatCount <= 0 {
		return domain.Booking{}, domain.NewValidationError("SeatCount", "must be greater than 0")
	}

	l.inventory.mu.Lock()
	defer l.inventory.mu.Unlock()

	bookings, err := l.bookings.LoadAll()
	if err != nil {
		return domain.Booking{}, err
	}

	idx := -1
	for i := range bookings {
		if bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}

	if err := checkOwnership(bookings[idx], requester); err != nil {
		return domain.Booking{}, err
	}

	showtimes, err := l.inventory.showtimes.LoadAll()
	if err != nil {
		return domain.Booking{}, err
	}

	original := make([]domain.Showtime, len(showtimes))
	copy(original, showtimes)

	delta := newSeatCount - bookings[idx].SeatCount
	if _, err := adjustSeats(showtimes, bookings[idx].ShowtimeID, -delta); err != nil {
		return domain.Booking{}, err
	}

	if err := l.inventory.showtimes.ReplaceAll(showtimes); err != nil {
		return domain.Booking{}, err
	}

	bookings[idx].SeatCount = newSeatCount

	if err := l.bookings.ReplaceAll(bookings); err != nil {
		if rbErr := l.inventory.showtimes.ReplaceAll(original); rbErr != nil {
			l.logger.Error("seat rollback failed after booking write failure",
				"booking", id, "error", rbErr)
		}
		return domain.Booking{}, err
	}

	l.logger.Info("booking modified", "id", id, "seats", newSeatCount)

	return bookings[idx], nil
}

// CancelBooking restores the booking's seats to its showtime and removes the
// record. When the showtime no longer exists the booking is still removed and
// the restoration is skipped; that leniency is deliberate and logged.
func (l *Ledger) CancelBooking(id string, requester string) error {
	l.inventory.mu.Lock()
	defer l.inventory.mu.Unlock()

	bookings, err := l.bookings.LoadAll()
	if err != nil {
		return err
	}

	idx := -1
	for i := range bookings {
		if bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}

	if err := checkOwnership(bookings[idx], requester); err != nil {
		return err
	}

	showtimes, err := l.inventory.showtimes.LoadAll()
	if err != nil {
		return err
	}

	original := make([]domain.Showtime, len(showtimes))
	copy(original, showtimes)
	restored := false

	if _, ok := store.FindByKey(showtimes, showtimeID, bookings[idx].ShowtimeID); ok {
		if _, err := adjustSeats(showtimes, bookings[idx].ShowtimeID, bookings[idx].SeatCount); err != nil {
			return err
		}
		if err := l.inventory.showtimes.ReplaceAll(showtimes); err != nil {
			return err
		}
		restored = true
	} else {
		l.logger.Warn("cancelling booking for missing showtime, seats not restored",
			"booking", id, "showtime", bookings[idx].ShowtimeID)
	}

	cancelled := bookings[idx]
	bookings = append(bookings[:idx], bookings[idx+1:]...)

	if err := l.bookings.ReplaceAll(bookings); err != nil {
		if restored {
			if rbErr := l.inventory.showtimes.ReplaceAll(original); rbErr != nil {
				l.logger.Error("seat rollback failed after booking write failure",
					"booking", id, "error", rbErr)
			}
		}
		return err
	}

	l.logger.Info("booking cancelled", "id", id, "showtime", cancelled.ShowtimeID, "seats", cancelled.SeatCount)

	return nil
}

func (l *Ledger) Bookings() ([]domain.Booking, error) {
	return l.bookings.LoadAll()
}

// BookingsByCustomer lists a customer's bookings, matching the name
// case-insensitively.
func (l *Ledger) BookingsByCustomer(name string) ([]domain.Booking, error) {
	bookings, err := l.bookings.LoadAll()
	if err != nil {
		return nil, err
	}

	mine := []domain.Booking{}
	for _, booking := range bookings {
		if strings.EqualFold(booking.CustomerName, name) {
			mine = append(mine, booking)
		}
	}

	return mine, nil
}

// issueReceipt notifies the sink after a successful creation. Failures are
// logged and never propagate: the booking already exists.
func (l *Ledger) issueReceipt(booking domain.Booking, showtime domain.Showtime) {
	title, err := l.inventory.catalog.MovieTitle(showtime.MovieID)
	if err != nil {
		title = showtime.MovieID
	}

	receipt := domain.Receipt{
		BookingID:    booking.ID,
		CustomerName: booking.CustomerName,
		MovieTitle:   title,
		Date:         showtime.Date,
		Time:         showtime.Time,
		SeatCount:    booking.SeatCount,
	}

	if err := l.receipts.Issue(receipt); err != nil {
		l.logger.Warn("receipt generation failed", "booking", booking.ID, "error", err)
	}
}

func checkOwnership(booking domain.Booking, requester string) error {
	if requester == "" {
		return nil
	}

	if !strings.EqualFold(booking.CustomerName, requester) {
		return fmt.Errorf("%w: booking %s belongs to another customer", domain.ErrForbidden, booking.ID)
	}

	return nil
}
