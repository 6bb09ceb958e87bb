// Package catalog manages the reference data the booking core reads: movies
// and auditoriums. It owns no seat state, but it enforces the referential rule
// that a movie cannot be removed while a showtime still schedules it.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
)

type Service struct {
	mu          sync.Mutex
	movies      store.Store[domain.Movie]
	auditoriums store.Store[domain.Auditorium]
	showtimes   store.Store[domain.Showtime] // read-only, for the delete guard
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewService(
	movies store.Store[domain.Movie],
	auditoriums store.Store[domain.Auditorium],
	showtimes store.Store[domain.Showtime],
	validator *validator.Validate,
	logger *slog.Logger) *Service {

	return &Service{
		movies:      movies,
		auditoriums: auditoriums,
		showtimes:   showtimes,
		validator:   validator,
		logger:      logger,
	}
}

type MovieInput struct {
	Title    string             `validate:"required,nosep"`
	Rating   string             `validate:"excludesall=0x2C"`
	Duration int                `validate:"gt=0"`
	Language string             `validate:"excludesall=0x2C"`
	Status   domain.MovieStatus `validate:"oneof=Active Inactive"`
}

func (s *Service) AddMovie(input MovieInput) (domain.Movie, error) {
	if err := appvalidator.ToValidationError(s.validator.Struct(input)); err != nil {
		return domain.Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movies, err := s.movies.LoadAll()
	if err != nil {
		return domain.Movie{}, err
	}

	movie := domain.Movie{
		ID:       store.NextID(movies, movieID),
		Title:    input.Title,
		Rating:   input.Rating,
		Duration: input.Duration,
		Language: input.Language,
		Status:   input.Status,
	}

	if err := s.movies.Append(movie); err != nil {
		return domain.Movie{}, err
	}

	s.logger.Info("movie added", "id", movie.ID, "title", movie.Title)

	return movie, nil
}

func (s *Service) UpdateMovie(id string, input MovieInput) (domain.Movie, error) {
	if err := appvalidator.ToValidationError(s.validator.Struct(input)); err != nil {
		return domain.Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movies, err := s.movies.LoadAll()
	if err != nil {
		return domain.Movie{}, err
	}

	for i := range movies {
		if movies[i].ID != id {
			continue
		}

		movies[i].Title = input.Title
		movies[i].Rating = input.Rating
		movies[i].Duration = input.Duration
		movies[i].Language = input.Language
		movies[i].Status = input.Status

		if err := s.movies.ReplaceAll(movies); err != nil {
			return domain.Movie{}, err
		}

		return movies[i], nil
	}

	return domain.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
}

// DeleteMovie removes a movie unless a showtime still references it.
func (s *Service) DeleteMovie(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	showtimes, err := s.showtimes.LoadAll()
	if err != nil {
		return err
	}

	for _, showtime := range showtimes {
		if showtime.MovieID == id {
			return fmt.Errorf("%w: movie %s still has showtimes", domain.ErrConflict, id)
		}
	}

	movies, err := s.movies.LoadAll()
	if err != nil {
		return err
	}

	kept := movies[:0]
	for _, movie := range movies {
		if movie.ID != id {
			kept = append(kept, movie)
		}
	}

	if len(kept) == len(movies) {
		return fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}

	return s.movies.ReplaceAll(kept)
}

func (s *Service) Movies() ([]domain.Movie, error) {
	return s.movies.LoadAll()
}

func (s *Service) FindMovie(id string) (domain.Movie, error) {
	movies, err := s.movies.LoadAll()
	if err != nil {
		return domain.Movie{}, err
	}

	movie, ok := store.FindByKey(movies, movieID, id)
	if !ok {
		return domain.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}

	return movie, nil
}

type AuditoriumInput struct {
	ID   string `validate:"required,nosep"`
	Name string `validate:"required,nosep"`
}

// AddAuditorium keeps the caller-chosen identifier scheme of the reference
// data (AUD1, AUD2, ...) instead of allocating numeric ids.
func (s *Service) AddAuditorium(input AuditoriumInput) (domain.Auditorium, error) {
	if err := appvalidator.ToValidationError(s.validator.Struct(input)); err != nil {
		return domain.Auditorium{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	auditoriums, err := s.auditoriums.LoadAll()
	if err != nil {
		return domain.Auditorium{}, err
	}

	if _, ok := store.FindByKey(auditoriums, auditoriumID, input.ID); ok {
		return domain.Auditorium{}, fmt.Errorf("%w: auditorium %s already exists", domain.ErrConflict, input.ID)
	}

	auditorium := domain.Auditorium{ID: input.ID, Name: input.Name}
	if err := s.auditoriums.Append(auditorium); err != nil {
		return domain.Auditorium{}, err
	}

	s.logger.Info("auditorium added", "id", auditorium.ID, "name", auditorium.Name)

	return auditorium, nil
}

func (s *Service) Auditoriums() ([]domain.Auditorium, error) {
	return s.auditoriums.LoadAll()
}

func (s *Service) IsMovieActive(id string) (bool, error) {
	movies, err := s.movies.LoadAll()
	if err != nil {
		return false, err
	}

	movie, ok := store.FindByKey(movies, movieID, id)
	return ok && movie.Status == domain.MovieActive, nil
}

func (s *Service) AuditoriumExists(id string) (bool, error) {
	auditoriums, err := s.auditoriums.LoadAll()
	if err != nil {
		return false, err
	}

	_, ok := store.FindByKey(auditoriums, auditoriumID, id)
	return ok, nil
}

// MovieTitle resolves a movie id for display, falling back to the id itself
// when the movie is gone.
func (s *Service) MovieTitle(id string) (string, error) {
	movies, err := s.movies.LoadAll()
	if err != nil {
		return "", err
	}

	if movie, ok := store.FindByKey(movies, movieID, id); ok {
		return movie.Title, nil
	}

	return id, nil
}

// MovieIDsByTitle returns ids of movies whose title contains the keyword,
// case-insensitively.
func (s *Service) MovieIDsByTitle(keyword string) ([]string, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, domain.NewValidationError("keyword", "is required")
	}

	movies, err := s.movies.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), keyword) {
			ids = append(ids, movie.ID)
		}
	}

	return ids, nil
}

func movieID(m domain.Movie) string { return m.ID }

func auditoriumID(a domain.Auditorium) string { return a.ID }
