// Package receipt renders booking receipts as plain-text files, one per
// booking, in a dedicated directory.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/metinatakli/cinema-management-system/internal/domain"
)

type FileSink struct {
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt directory: %w", err)
	}

	return &FileSink{dir: dir}, nil
}

// Issue writes receipt_<bookingId>.txt. The ledger treats failures here as
// non-fatal; the booking already exists by the time a receipt is issued.
func (s *FileSink) Issue(r domain.Receipt) error {
	var b strings.Builder

	b.WriteString("===== CINEMA BOOKING RECEIPT =====\n")
	fmt.Fprintf(&b, "Booking ID : %s\n", r.BookingID)
	fmt.Fprintf(&b, "Customer    : %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Movie       : %s\n", r.MovieTitle)
	fmt.Fprintf(&b, "Date        : %s\n", r.Date)
	fmt.Fprintf(&b, "Time        : %s\n", r.Time)
	fmt.Fprintf(&b, "Seats Booked: %d\n", r.SeatCount)
	b.WriteString("Status      : PAID\n")
	b.WriteString("===============================\n")
	b.WriteString("Thank you for booking with us!\nEnjoy your movie!\n")

	path := filepath.Join(s.dir, fmt.Sprintf("receipt_%s.txt", r.BookingID))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write receipt %s: %w", path, err)
	}

	return nil
}
