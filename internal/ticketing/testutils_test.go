package ticketing

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
	"github.com/shopspring/decimal"
)

const (
	testMovieID       = "1"
	testMovieTitle    = "The Matrix"
	testInactiveMovie = "2"
	testAuditoriumID  = "AUD1"
	testSeatTotal     = 50
)

// decimal.Decimal carries unexported fields, so deep comparisons go through
// its own equality.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

type stubCatalog struct {
	Catalog
	IsMovieActiveFunc    func(id string) (bool, error)
	AuditoriumExistsFunc func(id string) (bool, error)
	MovieTitleFunc       func(id string) (string, error)
	MovieIDsByTitleFunc  func(keyword string) ([]string, error)
}

func (c *stubCatalog) IsMovieActive(id string) (bool, error) {
	return c.IsMovieActiveFunc(id)
}

func (c *stubCatalog) AuditoriumExists(id string) (bool, error) {
	return c.AuditoriumExistsFunc(id)
}

func (c *stubCatalog) MovieTitle(id string) (string, error) {
	return c.MovieTitleFunc(id)
}

func (c *stubCatalog) MovieIDsByTitle(keyword string) ([]string, error) {
	return c.MovieIDsByTitleFunc(keyword)
}

// newTestCatalog knows one active movie (id 1), one inactive movie (id 2) and
// one auditorium (AUD1).
func newTestCatalog() *stubCatalog {
	return &stubCatalog{
		IsMovieActiveFunc: func(id string) (bool, error) {
			return id == testMovieID, nil
		},
		AuditoriumExistsFunc: func(id string) (bool, error) {
			return id == testAuditoriumID, nil
		},
		MovieTitleFunc: func(id string) (string, error) {
			if id == testMovieID {
				return testMovieTitle, nil
			}
			return id, nil
		},
		MovieIDsByTitleFunc: func(keyword string) ([]string, error) {
			if strings.Contains(strings.ToLower(testMovieTitle), strings.ToLower(keyword)) {
				return []string{testMovieID}, nil
			}
			return []string{}, nil
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testShowtime() domain.Showtime {
	return domain.Showtime{
		ID:             "1",
		MovieID:        testMovieID,
		AuditoriumID:   testAuditoriumID,
		Date:           "2025-06-01",
		Time:           "19:00",
		RemainingSeats: testSeatTotal,
		BasePrice:      decimal.NewFromFloat(12.50),
	}
}

func newTestInventory(showtimes ...domain.Showtime) (*Inventory, *store.Memory[domain.Showtime], *store.Memory[domain.Booking]) {
	showtimeStore := store.NewMemory(showtimes...)
	bookingStore := store.NewMemory[domain.Booking]()

	inv := NewInventory(showtimeStore, bookingStore, newTestCatalog(), appvalidator.NewValidator(), testLogger())

	return inv, showtimeStore, bookingStore
}
