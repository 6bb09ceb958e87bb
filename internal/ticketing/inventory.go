package ticketing

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
	"github.com/shopspring/decimal"
)

// Inventory owns the showtime collection. All seat-count mutation funnels
// through adjustSeats under the pair lock, which is what keeps remaining
// seats non-negative no matter how many actors book concurrently.
type Inventory struct {
	mu        sync.Mutex
	showtimes store.Store[domain.Showtime]
	bookings  store.Store[domain.Booking] // read-only, for the delete guard
	catalog   Catalog
	validator *validator.Validate
	logger    *slog.Logger
}

func NewInventory(
	showtimes store.Store[domain.Showtime],
	bookings store.Store[domain.Booking],
	catalog Catalog,
	validator *validator.Validate,
	logger *slog.Logger) *Inventory {

	return &Inventory{
		showtimes: showtimes,
		bookings:  bookings,
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

type CreateShowtimeInput struct {
	MovieID      string `validate:"required,nosep"`
	AuditoriumID string `validate:"required,nosep"`
	Date         string `validate:"required,showdate"`
	Time         string `validate:"required,showclock"`
	SeatTotal    int    `validate:"gt=0"`
	BasePrice    decimal.Decimal
}

// UpdateShowtimeInput reschedules an existing showtime. RemainingSeats is set
// directly, which lets staff correct a count; Ledger operations are otherwise
// the only writers of that field.
type UpdateShowtimeInput struct {
	MovieID        string `validate:"required,nosep"`
	AuditoriumID   string `validate:"required,nosep"`
	Date           string `validate:"required,showdate"`
	Time           string `validate:"required,showclock"`
	RemainingSeats int    `validate:"gte=0"`
	BasePrice      decimal.Decimal
}

// CreateShowtime validates the references and schedule slot, then appends a
// showtime whose remaining seats start at the full seat total.
func (inv *Inventory) CreateShowtime(input CreateShowtimeInput) (domain.Showtime, error) {
	if err := appvalidator.ToValidationError(inv.validator.Struct(input)); err != nil {
		return domain.Showtime{}, err
	}
	if input.BasePrice.IsNegative() {
		return domain.Showtime{}, domain.NewValidationError("BasePrice", "must not be negative")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.checkReferences(input.MovieID, input.AuditoriumID); err != nil {
		return domain.Showtime{}, err
	}

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return domain.Showtime{}, err
	}

	if err := checkOverlap(showtimes, input.AuditoriumID, input.Date, input.Time, ""); err != nil {
		return domain.Showtime{}, err
	}

	showtime := domain.Showtime{
		ID:             store.NextID(showtimes, showtimeID),
		MovieID:        input.MovieID,
		AuditoriumID:   input.AuditoriumID,
		Date:           input.Date,
		Time:           input.Time,
		RemainingSeats: input.SeatTotal,
		BasePrice:      input.BasePrice,
	}

	if err := inv.showtimes.Append(showtime); err != nil {
		return domain.Showtime{}, err
	}

	inv.logger.Info("showtime created",
		"id", showtime.ID,
		"movie", showtime.MovieID,
		"auditorium", showtime.AuditoriumID,
		"seats", showtime.RemainingSeats)

	return showtime, nil
}

// UpdateShowtime applies the same validation as creation; the overlap check
// skips the showtime being updated.
func (inv *Inventory) UpdateShowtime(id string, input UpdateShowtimeInput) (domain.Showtime, error) {
	if err := appvalidator.ToValidationError(inv.validator.Struct(input)); err != nil {
		return domain.Showtime{}, err
	}
	if input.BasePrice.IsNegative() {
		return domain.Showtime{}, domain.NewValidationError("BasePrice", "must not be negative")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.checkReferences(input.MovieID, input.AuditoriumID); err != nil {
		return domain.Showtime{}, err
	}

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return domain.Showtime{}, err
	}

	if err := checkOverlap(showtimes, input.AuditoriumID, input.Date, input.Time, id); err != nil {
		return domain.Showtime{}, err
	}

	for i := range showtimes {
		if showtimes[i].ID != id {
			continue
		}

		showtimes[i].MovieID = input.MovieID
		showtimes[i].AuditoriumID = input.AuditoriumID
		showtimes[i].Date = input.Date
		showtimes[i].Time = input.Time
		showtimes[i].RemainingSeats = input.RemainingSeats
		showtimes[i].BasePrice = input.BasePrice

		if err := inv.showtimes.ReplaceAll(showtimes); err != nil {
			return domain.Showtime{}, err
		}

		return showtimes[i], nil
	}

	return domain.Showtime{}, fmt.Errorf("showtime %s: %w", id, domain.ErrNotFound)
}

// DeleteShowtime removes a showtime unless a booking still references it.
func (inv *Inventory) DeleteShowtime(id string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	bookings, err := inv.bookings.LoadAll()
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		if booking.ShowtimeID == id {
			return fmt.Errorf("%w: showtime %s still has bookings", domain.ErrConflict, id)
		}
	}

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return err
	}

	kept := showtimes[:0]
	for _, showtime := range showtimes {
		if showtime.ID != id {
			kept = append(kept, showtime)
		}
	}

	if len(kept) == len(showtimes) {
		return fmt.Errorf("showtime %s: %w", id, domain.ErrNotFound)
	}

	return inv.showtimes.ReplaceAll(kept)
}

// AdjustRemainingSeats applies a signed seat delta and returns the new
// remaining count. This is the only mutation path available outside the
// package; the Ledger uses the same helper while already holding the lock.
func (inv *Inventory) AdjustRemainingSeats(id string, delta int) (int, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return 0, err
	}

	remaining, err := adjustSeats(showtimes, id, delta)
	if err != nil {
		return 0, err
	}

	if err := inv.showtimes.ReplaceAll(showtimes); err != nil {
		return 0, err
	}

	return remaining, nil
}

func (inv *Inventory) Showtimes() ([]domain.Showtime, error) {
	return inv.showtimes.LoadAll()
}

func (inv *Inventory) FindShowtime(id string) (domain.Showtime, error) {
	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return domain.Showtime{}, err
	}

	showtime, ok := store.FindByKey(showtimes, showtimeID, id)
	if !ok {
		return domain.Showtime{}, fmt.Errorf("showtime %s: %w", id, domain.ErrNotFound)
	}

	return showtime, nil
}

// ShowtimesOn lists the showtimes scheduled on one calendar date.
func (inv *Inventory) ShowtimesOn(date string) ([]domain.Showtime, error) {
	if err := inv.validator.Var(date, "required,showdate"); err != nil {
		return nil, domain.NewValidationError("Date", "must be a valid date in YYYY-MM-DD format")
	}

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return nil, err
	}

	matched := []domain.Showtime{}
	for _, showtime := range showtimes {
		if showtime.Date == date {
			matched = append(matched, showtime)
		}
	}

	return matched, nil
}

// SearchByMovieTitle lists showtimes for movies whose title contains the
// keyword.
func (inv *Inventory) SearchByMovieTitle(keyword string) ([]domain.Showtime, error) {
	ids, err := inv.catalog.MovieIDsByTitle(keyword)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	showtimes, err := inv.showtimes.LoadAll()
	if err != nil {
		return nil, err
	}

	matched := []domain.Showtime{}
	for _, showtime := range showtimes {
		if wanted[showtime.MovieID] {
			matched = append(matched, showtime)
		}
	}

	return matched, nil
}

func (inv *Inventory) checkReferences(movieID, auditoriumID string) error {
	active, err := inv.catalog.IsMovieActive(movieID)
	if err != nil {
		return err
	}
	if !active {
		return domain.NewValidationError("MovieID", "must reference an active movie")
	}

	exists, err := inv.catalog.AuditoriumExists(auditoriumID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("AuditoriumID", "must reference an existing auditorium")
	}

	return nil
}

// checkOverlap enforces that an auditorium hosts at most one showtime per
// instant. excludeID skips the showtime being rescheduled.
func checkOverlap(showtimes []domain.Showtime, auditoriumID, date, clock, excludeID string) error {
	for _, showtime := range showtimes {
		if showtime.ID == excludeID {
			continue
		}
		if showtime.AuditoriumID == auditoriumID && showtime.Date == date && showtime.Time == clock {
			return fmt.Errorf("%w: auditorium %s already has a showtime at %s %s",
				domain.ErrConflict, auditoriumID, date, clock)
		}
	}

	return nil
}
