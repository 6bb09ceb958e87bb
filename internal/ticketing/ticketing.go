// Package ticketing is the booking and inventory consistency core. Inventory
// owns showtimes and their remaining-seat counts; Ledger owns booking records
// and their lifecycle. The two share a single mutex, because every booking
// operation mutates both collections and must observe them as one unit: the
// invariant is that a showtime's remaining seats plus the seats of its active
// bookings always equal the total fixed when the showtime was created.
package ticketing

import (
	"fmt"

	"github.com/metinatakli/cinema-management-system/internal/domain"
)

// Catalog is the reference-data view the core needs. The catalog service
// implements it; tests substitute a stub.
type Catalog interface {
	IsMovieActive(id string) (bool, error)
	AuditoriumExists(id string) (bool, error)
	MovieTitle(id string) (string, error)
	MovieIDsByTitle(keyword string) ([]string, error)
}

// adjustSeats applies a signed delta to one showtime's remaining seats in
// place, refusing to let the count go negative. Callers hold the pair lock and
// are responsible for persisting the slice.
func adjustSeats(showtimes []domain.Showtime, id string, delta int) (int, error) {
	for i := range showtimes {
		if showtimes[i].ID != id {
			continue
		}

		remaining := showtimes[i].RemainingSeats + delta
		if remaining < 0 {
			return 0, fmt.Errorf("%w: not enough seats remaining for showtime %s", domain.ErrConflict, id)
		}

		showtimes[i].RemainingSeats = remaining
		return remaining, nil
	}

	return 0, fmt.Errorf("showtime %s: %w", id, domain.ErrNotFound)
}

func showtimeID(s domain.Showtime) string { return s.ID }

func bookingID(b domain.Booking) string { return b.ID }
