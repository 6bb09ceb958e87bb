package app

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/metinatakli/cinema-management-system/internal/auth"
	"github.com/metinatakli/cinema-management-system/internal/catalog"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/maintenance"
	"github.com/metinatakli/cinema-management-system/internal/receipt"
	"github.com/metinatakli/cinema-management-system/internal/store"
	"github.com/metinatakli/cinema-management-system/internal/ticketing"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires the full service graph over in-memory stores and
// returns the shell plus its captured output.
func newTestApplication(t *testing.T, script string) (*Application, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()

	movies := store.NewMemory[domain.Movie]()
	auditoriums := store.NewMemory[domain.Auditorium]()
	showtimes := store.NewMemory[domain.Showtime]()
	bookings := store.NewMemory[domain.Booking]()

	receipts, err := receipt.NewFileSink(t.TempDir())
	require.NoError(t, err)

	catalogService := catalog.NewService(movies, auditoriums, showtimes, validator, logger)
	inventory := ticketing.NewInventory(showtimes, bookings, catalogService, validator, logger)
	ledger := ticketing.NewLedger(inventory, bookings, receipts, validator, logger)

	out := &bytes.Buffer{}

	shell := New(Options{
		Logger:      logger,
		Auth:        auth.NewService(store.NewMemory[domain.User](), validator, logger),
		Catalog:     catalogService,
		Inventory:   inventory,
		Ledger:      ledger,
		Maintenance: maintenance.NewService(store.NewMemory[domain.Equipment](), store.NewMemory[domain.Issue](), catalogService, validator, logger),
		Input:       strings.NewReader(script),
		Output:      out,
	})

	return shell, out
}

func TestRunManagerFlow(t *testing.T) {
	script := strings.Join([]string{
		"1", // register
		"alice", "s3cret",
		"2", // login
		"alice", "s3cret",
		"1", // cinema manager
		"1", // add auditorium
		"AUD1", "Main Hall",
		"3", // add movie
		"Inception", "PG-13", "148", "English", "Active",
		"7", // add show
		"1", "AUD1", "2025-07-01", "19:00", "100", "12.50",
		"0", // exit manager menu
		"0", // logout
		"0", // exit
	}, "\n") + "\n"

	shell, out := newTestApplication(t, script)
	require.NoError(t, shell.Run())

	text := out.String()
	assert.Contains(t, text, "Registration successful.")
	assert.Contains(t, text, "Welcome, alice!")
	assert.Contains(t, text, "Auditorium added.")
	assert.Contains(t, text, "Movie added. ID: 1")
	assert.Contains(t, text, "Show added. ID: 1")
	assert.Contains(t, text, "Goodbye!")
}

func TestRunCustomerBookingFlow(t *testing.T) {
	script := strings.Join([]string{
		"1", // register
		"bob", "s3cret",
		"2", // login
		"bob", "s3cret",
		"1", // cinema manager, to seed reference data
		"1",
		"AUD1", "Main Hall",
		"3",
		"Inception", "PG-13", "148", "English", "Active",
		"7",
		"1", "AUD1", "2025-07-01", "19:00", "100", "12.50",
		"0",
		"4", // customer
		"Bob",
		"5", // book ticket
		"1", "2",
		"1", // pay by cash
		"6", // view my bookings
		"0", // exit customer menu
		"0", // logout
		"0", // exit
	}, "\n") + "\n"

	shell, out := newTestApplication(t, script)
	require.NoError(t, shell.Run())

	text := out.String()
	assert.Contains(t, text, "Payment successful (Cash).")
	assert.Contains(t, text, "Booking successful. ID=1")
	assert.Contains(t, text, "Your Bookings:")
	assert.Contains(t, text, "1 | Bob | 1 | 2 | PAID")
}

func TestRunRejectsBadLogin(t *testing.T) {
	script := strings.Join([]string{
		"2", // login without registering
		"ghost", "nope",
		"0",
	}, "\n") + "\n"

	shell, out := newTestApplication(t, script)
	require.NoError(t, shell.Run())

	assert.Contains(t, out.String(), "Invalid credentials.")
}
