package ticketing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InventoryTestSuite struct {
	suite.Suite
	inv *Inventory
}

func (s *InventoryTestSuite) SetupTest() {
	s.inv, _, _ = newTestInventory()
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func validCreateInput() CreateShowtimeInput {
	return CreateShowtimeInput{
		MovieID:      testMovieID,
		AuditoriumID: testAuditoriumID,
		Date:         "2025-06-01",
		Time:         "19:00",
		SeatTotal:    testSeatTotal,
		BasePrice:    decimal.NewFromFloat(12.50),
	}
}

func (s *InventoryTestSuite) TestCreateShowtime() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	s.Equal("1", created.ID)
	s.Equal(testSeatTotal, created.RemainingSeats)

	found, err := s.inv.FindShowtime(created.ID)
	s.Require().NoError(err)

	diff := cmp.Diff(created, found, decimalComparer)
	s.Empty(diff, "FindShowtime mismatch (-created +found):\n%s", diff)
}

func (s *InventoryTestSuite) TestCreateShowtimeValidation() {
	tests := []struct {
		name      string
		mutate    func(*CreateShowtimeInput)
		wantField string
	}{
		{
			name:      "inactive movie",
			mutate:    func(in *CreateShowtimeInput) { in.MovieID = testInactiveMovie },
			wantField: "MovieID",
		},
		{
			name:      "unknown auditorium",
			mutate:    func(in *CreateShowtimeInput) { in.AuditoriumID = "AUD9" },
			wantField: "AuditoriumID",
		},
		{
			name:      "malformed date",
			mutate:    func(in *CreateShowtimeInput) { in.Date = "01-06-2025" },
			wantField: "Date",
		},
		{
			name:      "impossible calendar date",
			mutate:    func(in *CreateShowtimeInput) { in.Date = "2025-02-31" },
			wantField: "Date",
		},
		{
			name:      "malformed time",
			mutate:    func(in *CreateShowtimeInput) { in.Time = "7pm" },
			wantField: "Time",
		},
		{
			name:      "zero seats",
			mutate:    func(in *CreateShowtimeInput) { in.SeatTotal = 0 },
			wantField: "SeatTotal",
		},
		{
			name:      "negative price",
			mutate:    func(in *CreateShowtimeInput) { in.BasePrice = decimal.NewFromInt(-1) },
			wantField: "BasePrice",
		},
		{
			name:      "movie id with separator",
			mutate:    func(in *CreateShowtimeInput) { in.MovieID = "1,2" },
			wantField: "MovieID",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			input := validCreateInput()
			tt.mutate(&input)

			_, err := s.inv.CreateShowtime(input)

			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Contains(validationErr.Violations, tt.wantField)

			showtimes, loadErr := s.inv.Showtimes()
			s.Require().NoError(loadErr)
			s.Empty(showtimes, "failed create must not persist anything")
		})
	}
}

func (s *InventoryTestSuite) TestCreateShowtimeRejectsOverlap() {
	_, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	_, err = s.inv.CreateShowtime(validCreateInput())
	s.Require().ErrorIs(err, domain.ErrConflict)

	showtimes, err := s.inv.Showtimes()
	s.Require().NoError(err)
	s.Len(showtimes, 1)
}

func (s *InventoryTestSuite) TestCreateShowtimeAllowsSameSlotOtherDate() {
	_, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	input := validCreateInput()
	input.Date = "2025-06-02"

	created, err := s.inv.CreateShowtime(input)
	s.Require().NoError(err)
	s.Equal("2", created.ID)
}

func (s *InventoryTestSuite) TestUpdateShowtimeOverlapExcludesSelf() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	// Rescheduling onto its own slot is not an overlap.
	updated, err := s.inv.UpdateShowtime(created.ID, UpdateShowtimeInput{
		MovieID:        created.MovieID,
		AuditoriumID:   created.AuditoriumID,
		Date:           created.Date,
		Time:           created.Time,
		RemainingSeats: 40,
		BasePrice:      created.BasePrice,
	})
	s.Require().NoError(err)
	s.Equal(40, updated.RemainingSeats)
}

func (s *InventoryTestSuite) TestUpdateShowtimeRejectsOverlapWithOther() {
	first, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	input := validCreateInput()
	input.Time = "21:00"
	second, err := s.inv.CreateShowtime(input)
	s.Require().NoError(err)

	_, err = s.inv.UpdateShowtime(second.ID, UpdateShowtimeInput{
		MovieID:        second.MovieID,
		AuditoriumID:   second.AuditoriumID,
		Date:           first.Date,
		Time:           first.Time,
		RemainingSeats: second.RemainingSeats,
		BasePrice:      second.BasePrice,
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *InventoryTestSuite) TestUpdateShowtimeNotFound() {
	_, err := s.inv.UpdateShowtime("42", UpdateShowtimeInput{
		MovieID:        testMovieID,
		AuditoriumID:   testAuditoriumID,
		Date:           "2025-06-01",
		Time:           "19:00",
		RemainingSeats: 10,
		BasePrice:      decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *InventoryTestSuite) TestDeleteShowtime() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	s.Require().NoError(s.inv.DeleteShowtime(created.ID))

	_, err = s.inv.FindShowtime(created.ID)
	s.Require().ErrorIs(err, domain.ErrNotFound)

	s.Require().ErrorIs(s.inv.DeleteShowtime(created.ID), domain.ErrNotFound)
}

func (s *InventoryTestSuite) TestDeleteShowtimeBlockedByBooking() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	s.Require().NoError(s.inv.bookings.Append(domain.Booking{
		ID:           "1",
		CustomerName: "Alice",
		ShowtimeID:   created.ID,
		SeatCount:    2,
		Status:       domain.BookingPaid,
	}))

	err = s.inv.DeleteShowtime(created.ID)
	s.Require().ErrorIs(err, domain.ErrConflict)

	_, err = s.inv.FindShowtime(created.ID)
	s.NoError(err, "showtime must survive a blocked delete")
}

func (s *InventoryTestSuite) TestAdjustRemainingSeats() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	remaining, err := s.inv.AdjustRemainingSeats(created.ID, -10)
	s.Require().NoError(err)
	s.Equal(testSeatTotal-10, remaining)

	remaining, err = s.inv.AdjustRemainingSeats(created.ID, 5)
	s.Require().NoError(err)
	s.Equal(testSeatTotal-5, remaining)
}

func (s *InventoryTestSuite) TestAdjustRemainingSeatsNeverGoesNegative() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	_, err = s.inv.AdjustRemainingSeats(created.ID, -(testSeatTotal + 1))
	s.Require().ErrorIs(err, domain.ErrConflict)

	found, err := s.inv.FindShowtime(created.ID)
	s.Require().NoError(err)
	s.Equal(testSeatTotal, found.RemainingSeats, "rejected adjustment must not change state")
}

func (s *InventoryTestSuite) TestAdjustRemainingSeatsNotFound() {
	_, err := s.inv.AdjustRemainingSeats("42", -1)
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *InventoryTestSuite) TestShowtimesOn() {
	_, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	input := validCreateInput()
	input.Date = "2025-06-02"
	_, err = s.inv.CreateShowtime(input)
	s.Require().NoError(err)

	matched, err := s.inv.ShowtimesOn("2025-06-02")
	s.Require().NoError(err)
	s.Len(matched, 1)
	s.Equal("2025-06-02", matched[0].Date)

	var validationErr *domain.ValidationError
	_, err = s.inv.ShowtimesOn("tomorrow")
	s.Require().True(errors.As(err, &validationErr))
}

func (s *InventoryTestSuite) TestSearchByMovieTitle() {
	created, err := s.inv.CreateShowtime(validCreateInput())
	s.Require().NoError(err)

	matched, err := s.inv.SearchByMovieTitle("matrix")
	s.Require().NoError(err)
	s.Require().Len(matched, 1)
	s.Equal(created.ID, matched[0].ID)

	matched, err = s.inv.SearchByMovieTitle("inception")
	s.Require().NoError(err)
	s.Empty(matched)
}
