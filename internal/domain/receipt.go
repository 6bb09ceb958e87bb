package domain

// Receipt is the notification handed to the receipt sink after a successful
// booking. Sink failures must never roll the booking back.
type Receipt struct {
	BookingID    string
	CustomerName string
	MovieTitle   string
	Date         string
	Time         string
	SeatCount    int
}

type ReceiptSink interface {
	Issue(Receipt) error
}
