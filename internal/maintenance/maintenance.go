// Package maintenance tracks auditorium equipment status and the technician
// issue board. It has no coupling to booking correctness; it reads the
// auditorium directory only to reject references to unknown rooms.
package maintenance

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
)

// AuditoriumDirectory is the slice of the catalog this package needs.
type AuditoriumDirectory interface {
	AuditoriumExists(id string) (bool, error)
}

type Service struct {
	mu          sync.Mutex
	equipment   store.Store[domain.Equipment]
	issues      store.Store[domain.Issue]
	auditoriums AuditoriumDirectory
	validator   *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(
	equipment store.Store[domain.Equipment],
	issues store.Store[domain.Issue],
	auditoriums AuditoriumDirectory,
	validator *validator.Validate,
	logger *slog.Logger) *Service {

	return &Service{
		equipment:   equipment,
		issues:      issues,
		auditoriums: auditoriums,
		validator:   validator,
		logger:      logger,
		now:         time.Now,
	}
}

type ReportIssueInput struct {
	AuditoriumID string `validate:"required,nosep"`
	Type         string `validate:"oneof=projector sound aircon seat power network"`
	Details      string `validate:"required,nosep"`
}

// ReportIssue logs a new open issue. Issue ids keep the ISSnnnn scheme and
// derive from the row count, not from the numeric-id allocator.
func (s *Service) ReportIssue(input ReportIssueInput) (domain.Issue, error) {
	if err := appvalidator.ToValidationError(s.validator.Struct(input)); err != nil {
		return domain.Issue{}, err
	}

	if err := s.checkAuditorium(input.AuditoriumID); err != nil {
		return domain.Issue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.issues.LoadAll()
	if err != nil {
		return domain.Issue{}, err
	}

	issue := domain.Issue{
		ID:           fmt.Sprintf("ISS%04d", len(issues)+1),
		AuditoriumID: input.AuditoriumID,
		Type:         input.Type,
		Details:      input.Details,
		Status:       domain.IssueOpen,
		CreatedAt:    s.now().Format(domain.TimestampLayout),
	}

	if err := s.issues.Append(issue); err != nil {
		return domain.Issue{}, err
	}

	s.logger.Info("issue reported", "id", issue.ID, "auditorium", issue.AuditoriumID, "type", issue.Type)

	return issue, nil
}

func (s *Service) Issues() ([]domain.Issue, error) {
	return s.issues.LoadAll()
}

// ResolveIssue closes an open issue, stamping the resolution time and the
// resolving technician. Resolving a closed or unknown issue fails.
func (s *Service) ResolveIssue(id, resolvedBy string) (domain.Issue, error) {
	if err := s.validator.Var(resolvedBy, "required,nosep"); err != nil {
		return domain.Issue{}, domain.NewValidationError("ResolvedBy", "must be non-empty and must not contain a comma")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.issues.LoadAll()
	if err != nil {
		return domain.Issue{}, err
	}

	for i := range issues {
		if issues[i].ID != id || issues[i].Status != domain.IssueOpen {
			continue
		}

		issues[i].Status = domain.IssueResolved
		issues[i].ResolvedAt = s.now().Format(domain.TimestampLayout)
		issues[i].ResolvedBy = resolvedBy

		if err := s.issues.ReplaceAll(issues); err != nil {
			return domain.Issue{}, err
		}

		return issues[i], nil
	}

	return domain.Issue{}, fmt.Errorf("open issue %s: %w", id, domain.ErrNotFound)
}

type EquipmentInput struct {
	AuditoriumID string `validate:"required,nosep"`
	Status       string `validate:"oneof=READY MAINTENANCE"`
	Note         string `validate:"excludesall=0x2C"`
}

// SetEquipmentStatus upserts the status row for one auditorium.
func (s *Service) SetEquipmentStatus(input EquipmentInput) error {
	if err := appvalidator.ToValidationError(s.validator.Struct(input)); err != nil {
		return err
	}

	if err := s.checkAuditorium(input.AuditoriumID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.equipment.LoadAll()
	if err != nil {
		return err
	}

	updated := domain.Equipment{
		AuditoriumID: input.AuditoriumID,
		Status:       input.Status,
		LastUpdate:   s.now().Format(domain.TimestampLayout),
		Note:         input.Note,
	}

	found := false
	for i := range rows {
		if rows[i].AuditoriumID == input.AuditoriumID {
			rows[i] = updated
			found = true
			break
		}
	}
	if !found {
		rows = append(rows, updated)
	}

	if err := s.equipment.ReplaceAll(rows); err != nil {
		return err
	}

	s.logger.Info("auditorium status set", "auditorium", input.AuditoriumID, "status", input.Status)

	return nil
}

// EquipmentStatus reports an auditorium's status, defaulting to READY when no
// row has been recorded yet.
func (s *Service) EquipmentStatus(auditoriumID string) (domain.Equipment, error) {
	rows, err := s.equipment.LoadAll()
	if err != nil {
		return domain.Equipment{}, err
	}

	for _, row := range rows {
		if row.AuditoriumID == auditoriumID {
			return row, nil
		}
	}

	return domain.Equipment{AuditoriumID: auditoriumID, Status: domain.EquipmentReady}, nil
}

// AuditoriumReady reports whether an auditorium can host a show right now.
func (s *Service) AuditoriumReady(auditoriumID string) (bool, error) {
	equipment, err := s.EquipmentStatus(auditoriumID)
	if err != nil {
		return false, err
	}

	return equipment.Status == domain.EquipmentReady, nil
}

func (s *Service) checkAuditorium(id string) error {
	exists, err := s.auditoriums.AuditoriumExists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("AuditoriumID", "must reference an existing auditorium")
	}

	return nil
}
