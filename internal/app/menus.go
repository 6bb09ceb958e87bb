package app

import (
	"sort"
	"strings"

	"github.com/metinatakli/cinema-management-system/internal/catalog"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/maintenance"
	"github.com/metinatakli/cinema-management-system/internal/ticketing"
	"github.com/shopspring/decimal"
)

func (app *Application) managerMenu() {
	for {
		app.println("\n===== Cinema Manager Menu =====")
		app.println("1) Add Auditorium")
		app.println("2) View Auditoriums")
		app.println("3) Add Movie")
		app.println("4) Update Movie")
		app.println("5) Remove Movie")
		app.println("6) View Movies")
		app.println("7) Add Show")
		app.println("8) Update Show")
		app.println("9) Remove Show")
		app.println("10) View Shows")
		app.println("0) Exit")

		choice, ok := app.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			app.addAuditorium()
		case "2":
			app.viewAuditoriums()
		case "3":
			app.addMovie()
		case "4":
			app.updateMovie()
		case "5":
			app.removeMovie()
		case "6":
			app.viewMovies()
		case "7":
			app.addShowtime()
		case "8":
			app.updateShowtime()
		case "9":
			app.removeShowtime()
		case "10":
			app.viewShowtimes(nil)
		case "0":
			return
		default:
			app.println("Invalid choice.")
		}
	}
}

func (app *Application) clerkMenu() {
	for {
		app.println("\n===== Ticketing Clerk Menu =====")
		app.println("1) View Shows")
		app.println("2) View Seat Availability")
		app.println("3) Book Ticket")
		app.println("4) View Bookings")
		app.println("5) Cancel/Modify Booking")
		app.println("0) Exit")

		choice, ok := app.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1", "2":
			app.viewShowtimes(nil)
		case "3":
			name, ok := app.prompt("Customer name: ")
			if !ok {
				return
			}
			app.bookTicket(name)
		case "4":
			app.viewBookings()
		case "5":
			// Clerks manage any booking, so no requester identity is passed.
			app.cancelOrModifyBooking("")
		case "0":
			return
		default:
			app.println("Invalid choice. Try again")
		}
	}
}

func (app *Application) technicianMenu() {
	for {
		app.println("\n=== TECHNICIAN MENU ===")
		app.println("1) View upcoming schedules")
		app.println("2) Report technical issue")
		app.println("3) View issue board")
		app.println("4) Resolve an issue")
		app.println("5) Mark auditorium READY/MAINTENANCE")
		app.println("6) Readiness checklist for a show")
		app.println("0) Exit")

		choice, ok := app.prompt("Select option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			app.viewUpcomingSchedules()
		case "2":
			app.reportIssue()
		case "3":
			app.viewIssueBoard()
		case "4":
			app.resolveIssue()
		case "5":
			app.markAuditoriumStatus()
		case "6":
			app.readinessCheck()
		case "0":
			return
		default:
			app.println("Invalid option. Try again.")
		}
	}
}

func (app *Application) customerMenu() {
	name, ok := app.prompt("\nEnter your name (for booking records): ")
	if !ok || name == "" || strings.Contains(name, ",") {
		app.println("Invalid name.")
		return
	}

	for {
		app.println("\n===== Customer Menu =====")
		app.println("1) View Movies")
		app.println("2) View All Shows")
		app.println("3) Search Shows by Date")
		app.println("4) Search Shows by Movie Title")
		app.println("5) Book Ticket")
		app.println("6) View My Bookings")
		app.println("7) Cancel/Modify My Booking")
		app.println("0) Exit")

		choice, ok := app.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			app.viewMovies()
		case "2":
			app.viewShowtimes(nil)
		case "3":
			date, ok := app.prompt("Enter date (YYYY-MM-DD): ")
			if !ok {
				return
			}
			showtimes, err := app.inventory.ShowtimesOn(date)
			if err != nil {
				app.printError(err)
				continue
			}
			app.viewShowtimes(showtimes)
		case "4":
			keyword, ok := app.prompt("Enter movie keyword: ")
			if !ok {
				return
			}
			showtimes, err := app.inventory.SearchByMovieTitle(keyword)
			if err != nil {
				app.printError(err)
				continue
			}
			app.viewShowtimes(showtimes)
		case "5":
			app.bookTicket(name)
		case "6":
			app.viewMyBookings(name)
		case "7":
			app.cancelOrModifyBooking(name)
		case "0":
			return
		default:
			app.println("Invalid choice.")
		}
	}
}

// ---- catalog flows ----

func (app *Application) addAuditorium() {
	id, ok := app.prompt("Auditorium ID (e.g., AUD1): ")
	if !ok {
		return
	}
	name, ok := app.prompt("Auditorium name: ")
	if !ok {
		return
	}

	if _, err := app.catalog.AddAuditorium(catalog.AuditoriumInput{ID: id, Name: name}); err != nil {
		app.printError(err)
		return
	}

	app.println("Auditorium added.")
}

func (app *Application) viewAuditoriums() {
	auditoriums, err := app.catalog.Auditoriums()
	if err != nil {
		app.printError(err)
		return
	}
	if len(auditoriums) == 0 {
		app.println("No auditoriums.")
		return
	}

	app.println("\nAuditoriums:")
	for _, a := range auditoriums {
		app.printf("%s | %s\n", a.ID, a.Name)
	}
}

func (app *Application) promptMovieInput() (catalog.MovieInput, bool) {
	title, ok := app.prompt("Title: ")
	if !ok {
		return catalog.MovieInput{}, false
	}
	rating, ok := app.prompt("Rating: ")
	if !ok {
		return catalog.MovieInput{}, false
	}
	duration, ok := app.promptInt("Duration(min): ")
	if !ok {
		return catalog.MovieInput{}, false
	}
	language, ok := app.prompt("Language: ")
	if !ok {
		return catalog.MovieInput{}, false
	}
	status, ok := app.prompt("Status(Active/Inactive): ")
	if !ok {
		return catalog.MovieInput{}, false
	}

	return catalog.MovieInput{
		Title:    title,
		Rating:   rating,
		Duration: duration,
		Language: language,
		Status:   domain.MovieStatus(status),
	}, true
}

func (app *Application) addMovie() {
	input, ok := app.promptMovieInput()
	if !ok {
		return
	}

	movie, err := app.catalog.AddMovie(input)
	if err != nil {
		app.printError(err)
		return
	}

	app.println("Movie added. ID:", movie.ID)
}

func (app *Application) updateMovie() {
	id, ok := app.prompt("MovieID: ")
	if !ok {
		return
	}

	input, ok := app.promptMovieInput()
	if !ok {
		return
	}

	if _, err := app.catalog.UpdateMovie(id, input); err != nil {
		app.printError(err)
		return
	}

	app.println("Updated.")
}

func (app *Application) removeMovie() {
	id, ok := app.prompt("MovieID: ")
	if !ok {
		return
	}

	if err := app.catalog.DeleteMovie(id); err != nil {
		app.printError(err)
		return
	}

	app.println("Removed.")
}

func (app *Application) viewMovies() {
	movies, err := app.catalog.Movies()
	if err != nil {
		app.printError(err)
		return
	}
	if len(movies) == 0 {
		app.println("No movies.")
		return
	}

	app.println("\nMovies:")
	for _, m := range movies {
		app.printf("%s | %s | %s | %d | %s | %s\n", m.ID, m.Title, m.Rating, m.Duration, m.Language, m.Status)
	}
}

// ---- showtime flows ----

func (app *Application) promptPrice(label string) (decimal.Decimal, bool) {
	raw, ok := app.prompt(label)
	if !ok {
		return decimal.Decimal{}, false
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		app.println("Invalid price.")
		return decimal.Decimal{}, false
	}

	return price, true
}

func (app *Application) addShowtime() {
	movieID, ok := app.prompt("MovieID: ")
	if !ok {
		return
	}
	auditoriumID, ok := app.prompt("Auditorium ID: ")
	if !ok {
		return
	}
	date, ok := app.prompt("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	clock, ok := app.prompt("Time (HH:MM): ")
	if !ok {
		return
	}
	seats, ok := app.promptInt("Total seats for this show: ")
	if !ok {
		return
	}
	price, ok := app.promptPrice("Base price: ")
	if !ok {
		return
	}

	showtime, err := app.inventory.CreateShowtime(ticketing.CreateShowtimeInput{
		MovieID:      movieID,
		AuditoriumID: auditoriumID,
		Date:         date,
		Time:         clock,
		SeatTotal:    seats,
		BasePrice:    price,
	})
	if err != nil {
		app.printError(err)
		return
	}

	app.println("Show added. ID:", showtime.ID)
}

func (app *Application) updateShowtime() {
	id, ok := app.prompt("ShowID: ")
	if !ok {
		return
	}
	movieID, ok := app.prompt("MovieID: ")
	if !ok {
		return
	}
	auditoriumID, ok := app.prompt("Auditorium ID: ")
	if !ok {
		return
	}
	date, ok := app.prompt("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	clock, ok := app.prompt("Time (HH:MM): ")
	if !ok {
		return
	}
	seats, ok := app.promptInt("Seats available: ")
	if !ok {
		return
	}
	price, ok := app.promptPrice("Base price: ")
	if !ok {
		return
	}

	_, err := app.inventory.UpdateShowtime(id, ticketing.UpdateShowtimeInput{
		MovieID:        movieID,
		AuditoriumID:   auditoriumID,
		Date:           date,
		Time:           clock,
		RemainingSeats: seats,
		BasePrice:      price,
	})
	if err != nil {
		app.printError(err)
		return
	}

	app.println("Show updated.")
}

func (app *Application) removeShowtime() {
	id, ok := app.prompt("ShowID: ")
	if !ok {
		return
	}

	if err := app.inventory.DeleteShowtime(id); err != nil {
		app.printError(err)
		return
	}

	app.println("Show removed.")
}

// viewShowtimes renders the given showtimes, or every showtime when nil.
func (app *Application) viewShowtimes(showtimes []domain.Showtime) {
	if showtimes == nil {
		var err error
		showtimes, err = app.inventory.Showtimes()
		if err != nil {
			app.printError(err)
			return
		}
	}
	if len(showtimes) == 0 {
		app.println("No shows.")
		return
	}

	movieNames, auditoriumNames := app.displayNames()

	app.println("\nShows:")
	for _, s := range showtimes {
		app.printf("%s | %s | %s | %s %s | seats=%d | price=%s\n",
			s.ID,
			nameOr(movieNames, s.MovieID),
			nameOr(auditoriumNames, s.AuditoriumID),
			s.Date, s.Time, s.RemainingSeats, s.BasePrice)
	}
}

func (app *Application) displayNames() (map[string]string, map[string]string) {
	movieNames := map[string]string{}
	if movies, err := app.catalog.Movies(); err == nil {
		for _, m := range movies {
			movieNames[m.ID] = m.Title
		}
	}

	auditoriumNames := map[string]string{}
	if auditoriums, err := app.catalog.Auditoriums(); err == nil {
		for _, a := range auditoriums {
			auditoriumNames[a.ID] = a.Name
		}
	}

	return movieNames, auditoriumNames
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}

	return id
}

// ---- booking flows ----

func (app *Application) bookTicket(customerName string) {
	app.viewShowtimes(nil)

	showtimeID, ok := app.prompt("Enter ShowID to book: ")
	if !ok {
		return
	}
	seats, ok := app.promptInt("Number of seats: ")
	if !ok {
		return
	}

	app.println("\n===== PAYMENT SECTION =====")
	app.println("1) Pay by Cash")
	app.println("2) Pay by Card")
	payChoice, ok := app.prompt("Select payment method (1/2): ")
	if !ok {
		return
	}

	input := ticketing.CreateBookingInput{
		ShowtimeID:   showtimeID,
		CustomerName: customerName,
		SeatCount:    seats,
	}

	switch payChoice {
	case "1":
		input.Payment = domain.PaymentCash
	case "2":
		input.Payment = domain.PaymentCard
		card, ok := app.prompt("Enter card number (XXXX-XXXX-XXXX-XXXX): ")
		if !ok {
			return
		}
		input.CardNumber = card
	default:
		app.println("Invalid payment option. Booking cancelled.")
		return
	}

	booking, err := app.ledger.CreateBooking(input)
	if err != nil {
		app.printError(err)
		return
	}

	app.printf("Payment successful (%s).\n", input.Payment)
	app.printf("Booking successful. ID=%s\n", booking.ID)
}

func (app *Application) viewBookings() {
	bookings, err := app.ledger.Bookings()
	if err != nil {
		app.printError(err)
		return
	}

	app.renderBookings(bookings, "No bookings.", "\nBookings:")
}

func (app *Application) viewMyBookings(name string) {
	bookings, err := app.ledger.BookingsByCustomer(name)
	if err != nil {
		app.printError(err)
		return
	}

	app.renderBookings(bookings, "You have no bookings.", "\nYour Bookings:")
}

func (app *Application) renderBookings(bookings []domain.Booking, emptyMsg, header string) {
	if len(bookings) == 0 {
		app.println(emptyMsg)
		return
	}

	app.println(header)
	for _, b := range bookings {
		app.printf("%s | %s | %s | %d | %s\n", b.ID, b.CustomerName, b.ShowtimeID, b.SeatCount, b.Status)
	}
}

func (app *Application) cancelOrModifyBooking(requester string) {
	if requester == "" {
		app.viewBookings()
	} else {
		app.viewMyBookings(requester)
	}

	id, ok := app.prompt("Enter Booking ID to cancel/modify: ")
	if !ok {
		return
	}
	choice, ok := app.prompt("Enter M to modify or C to cancel: ")
	if !ok {
		return
	}

	switch strings.ToUpper(choice) {
	case "C":
		if err := app.ledger.CancelBooking(id, requester); err != nil {
			app.printError(err)
			return
		}
		app.println("Booking cancelled.")
	case "M":
		seats, ok := app.promptInt("Enter new number of seats: ")
		if !ok {
			return
		}
		if _, err := app.ledger.ModifyBooking(id, seats, requester); err != nil {
			app.printError(err)
			return
		}
		app.println("Booking modified.")
	default:
		app.println("Invalid choice.")
	}
}

// ---- technician flows ----

func (app *Application) viewUpcomingSchedules() {
	showtimes, err := app.inventory.Showtimes()
	if err != nil {
		app.printError(err)
		return
	}
	if len(showtimes) == 0 {
		app.println("\nNo showtimes found.")
		return
	}

	sort.SliceStable(showtimes, func(i, j int) bool {
		ti, errI := showtimes[i].StartTime()
		tj, errJ := showtimes[j].StartTime()
		if errI != nil || errJ != nil {
			return errJ != nil && errI == nil
		}
		return ti.Before(tj)
	})

	movieNames, auditoriumNames := app.displayNames()

	app.println("\n-- Upcoming Schedules --")
	app.println("show_id | movie_title | auditorium | datetime | auditorium_status")
	for _, s := range showtimes {
		equipment, err := app.maintenance.EquipmentStatus(s.AuditoriumID)
		if err != nil {
			app.printError(err)
			return
		}
		app.printf("%s | %s | %s | %s %s | %s\n",
			s.ID,
			nameOr(movieNames, s.MovieID),
			nameOr(auditoriumNames, s.AuditoriumID),
			s.Date, s.Time, equipment.Status)
	}
}

func (app *Application) reportIssue() {
	auditoriumID, ok := app.prompt("Auditorium ID: ")
	if !ok {
		return
	}
	app.println("Issue types:", strings.Join(domain.IssueTypes, ", "))
	issueType, ok := app.prompt("Enter issue type: ")
	if !ok {
		return
	}
	details, ok := app.prompt("Describe the issue (no commas): ")
	if !ok {
		return
	}

	issue, err := app.maintenance.ReportIssue(maintenance.ReportIssueInput{
		AuditoriumID: auditoriumID,
		Type:         strings.ToLower(issueType),
		Details:      details,
	})
	if err != nil {
		app.printError(err)
		return
	}

	app.println("Issue logged with ID:", issue.ID)
}

func (app *Application) viewIssueBoard() {
	issues, err := app.maintenance.Issues()
	if err != nil {
		app.printError(err)
		return
	}
	if len(issues) == 0 {
		app.println("No issues logged.")
		return
	}

	app.println("\n-- OPEN Issues --")
	for _, i := range issues {
		if i.Status == domain.IssueOpen {
			app.printf("%s | AUD=%s | %s | %s | Created=%s\n", i.ID, i.AuditoriumID, i.Type, i.Details, i.CreatedAt)
		}
	}

	app.println("\n-- RESOLVED Issues --")
	for _, i := range issues {
		if i.Status == domain.IssueResolved {
			app.printf("%s | AUD=%s | %s | %s | Resolved=%s by %s\n",
				i.ID, i.AuditoriumID, i.Type, i.Details, i.ResolvedAt, i.ResolvedBy)
		}
	}
}

func (app *Application) resolveIssue() {
	id, ok := app.prompt("Enter issue ID to resolve: ")
	if !ok {
		return
	}
	resolvedBy, ok := app.prompt("Resolved by (technician name): ")
	if !ok {
		return
	}

	if _, err := app.maintenance.ResolveIssue(id, resolvedBy); err != nil {
		app.printError(err)
		return
	}

	app.println("Issue resolved.")
}

func (app *Application) markAuditoriumStatus() {
	auditoriumID, ok := app.prompt("Auditorium ID: ")
	if !ok {
		return
	}
	status, ok := app.prompt("Enter status (READY/MAINTENANCE): ")
	if !ok {
		return
	}
	note, ok := app.prompt("Note (no commas, optional): ")
	if !ok {
		return
	}

	err := app.maintenance.SetEquipmentStatus(maintenance.EquipmentInput{
		AuditoriumID: auditoriumID,
		Status:       strings.ToUpper(status),
		Note:         note,
	})
	if err != nil {
		app.printError(err)
		return
	}

	app.printf("Auditorium %s status set to %s.\n", auditoriumID, strings.ToUpper(status))
}

func (app *Application) readinessCheck() {
	showtimeID, ok := app.prompt("Enter show ID to check readiness: ")
	if !ok {
		return
	}

	showtime, err := app.inventory.FindShowtime(showtimeID)
	if err != nil {
		app.printError(err)
		return
	}

	app.println("\n-- Readiness Checklist (y/n) --")
	projector, ok := app.prompt("Projector OK? (y/n): ")
	if !ok {
		return
	}
	sound, ok := app.prompt("Sound OK? (y/n): ")
	if !ok {
		return
	}
	aircon, ok := app.prompt("Air conditioner OK? (y/n): ")
	if !ok {
		return
	}

	ready, err := app.maintenance.AuditoriumReady(showtime.AuditoriumID)
	if err != nil {
		app.printError(err)
		return
	}
	if !ready {
		equipment, err := app.maintenance.EquipmentStatus(showtime.AuditoriumID)
		if err != nil {
			app.printError(err)
			return
		}
		app.printf("Auditorium status is %s. Not ready.\n", equipment.Status)
		return
	}

	allOK := strings.EqualFold(projector, "y") && strings.EqualFold(sound, "y") && strings.EqualFold(aircon, "y")
	if allOK {
		app.println("Show is READY to start.")
	} else {
		app.println("Show is NOT ready. Please log issues or set maintenance.")
	}
}
