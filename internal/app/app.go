// Package app is the interactive role-menu shell over the ticketing core.
// It owns presentation only: every state change goes through the services,
// and every error shown to the operator is one of the services' discriminated
// failures.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/metinatakli/cinema-management-system/internal/auth"
	"github.com/metinatakli/cinema-management-system/internal/catalog"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/maintenance"
	"github.com/metinatakli/cinema-management-system/internal/ticketing"
)

type Application struct {
	logger      *slog.Logger
	auth        *auth.Service
	catalog     *catalog.Service
	inventory   *ticketing.Inventory
	ledger      *ticketing.Ledger
	maintenance *maintenance.Service

	in  *bufio.Scanner
	out io.Writer
}

type Options struct {
	Logger      *slog.Logger
	Auth        *auth.Service
	Catalog     *catalog.Service
	Inventory   *ticketing.Inventory
	Ledger      *ticketing.Ledger
	Maintenance *maintenance.Service
	Input       io.Reader
	Output      io.Writer
}

func New(opts Options) *Application {
	return &Application{
		logger:      opts.Logger,
		auth:        opts.Auth,
		catalog:     opts.Catalog,
		inventory:   opts.Inventory,
		ledger:      opts.Ledger,
		maintenance: opts.Maintenance,
		in:          bufio.NewScanner(opts.Input),
		out:         opts.Output,
	}
}

// Run drives the top-level register/login loop until the operator exits or
// input ends.
func (app *Application) Run() error {
	for {
		app.println("\n===== Cinema Ticketing System =====")
		app.println("1) Register")
		app.println("2) Login")
		app.println("0) Exit")

		choice, ok := app.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			app.register()
		case "2":
			if app.login() {
				app.roleMenu()
			}
		case "0":
			app.println("Goodbye!")
			return nil
		default:
			app.println("Invalid choice.")
		}
	}
}

func (app *Application) register() {
	username, ok := app.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := app.prompt("Enter password: ")
	if !ok {
		return
	}

	err := app.auth.Register(auth.Credentials{Username: username, Password: password})
	if err != nil {
		app.printError(err)
		return
	}

	app.println("Registration successful.")
}

func (app *Application) login() bool {
	username, ok := app.prompt("Enter username: ")
	if !ok {
		return false
	}
	password, ok := app.prompt("Enter password: ")
	if !ok {
		return false
	}

	_, err := app.auth.Authenticate(auth.Credentials{Username: username, Password: password})
	if err != nil {
		app.printError(err)
		return false
	}

	app.printf("Welcome, %s!\n", username)
	return true
}

func (app *Application) roleMenu() {
	for {
		app.println("\n===== Select Role =====")
		app.println("1) Cinema Manager")
		app.println("2) Ticketing Clerk")
		app.println("3) Technician")
		app.println("4) Customer (Self-service)")
		app.println("0) Logout")

		choice, ok := app.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			app.managerMenu()
		case "2":
			app.clerkMenu()
		case "3":
			app.technicianMenu()
		case "4":
			app.customerMenu()
		case "0":
			return
		default:
			app.println("Invalid choice.")
		}
	}
}

func (app *Application) prompt(label string) (string, bool) {
	fmt.Fprint(app.out, label)
	if !app.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(app.in.Text()), true
}

func (app *Application) promptInt(label string) (int, bool) {
	raw, ok := app.prompt(label)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		app.println("Invalid number.")
		return 0, false
	}

	return n, true
}

func (app *Application) println(a ...any) {
	fmt.Fprintln(app.out, a...)
}

func (app *Application) printf(format string, a ...any) {
	fmt.Fprintf(app.out, format, a...)
}

// printError renders a service failure for the operator. Validation,
// not-found, conflict and forbidden results carry safe messages; anything
// else is an internal failure that gets logged and masked.
func (app *Application) printError(err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		app.printf("Invalid input: %s.\n", validationErr.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, auth.ErrInvalidCredentials):
		app.printf("%s.\n", capitalize(err.Error()))
	default:
		app.logger.Error("operation failed", "error", err)
		app.println("Something went wrong. Please try again.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
