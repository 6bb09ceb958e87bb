package domain

import "fmt"

const (
	EquipmentReady       = "READY"
	EquipmentMaintenance = "MAINTENANCE"

	IssueOpen     = "OPEN"
	IssueResolved = "RESOLVED"
)

// IssueTypes is the closed set of technical issue categories technicians may log.
var IssueTypes = []string{"projector", "sound", "aircon", "seat", "power", "network"}

type Issue struct {
	ID           string
	AuditoriumID string
	Type         string
	Details      string
	Status       string
	CreatedAt    string
	ResolvedAt   string
	ResolvedBy   string
}

type Equipment struct {
	AuditoriumID string
	Status       string
	LastUpdate   string
	Note         string
}

type IssueCodec struct{}

func (IssueCodec) Header() []string {
	return []string{"issue_id", "aud_id", "issue_type", "details", "status", "created_at", "resolved_at", "resolved_by"}
}

func (IssueCodec) Fields(i Issue) []string {
	return []string{i.ID, i.AuditoriumID, i.Type, i.Details, i.Status, i.CreatedAt, i.ResolvedAt, i.ResolvedBy}
}

func (c IssueCodec) Parse(fields []string) (Issue, error) {
	if len(fields) != len(c.Header()) {
		return Issue{}, fmt.Errorf("issue row has %d fields, want %d", len(fields), len(c.Header()))
	}

	return Issue{
		ID:           fields[0],
		AuditoriumID: fields[1],
		Type:         fields[2],
		Details:      fields[3],
		Status:       fields[4],
		CreatedAt:    fields[5],
		ResolvedAt:   fields[6],
		ResolvedBy:   fields[7],
	}, nil
}

type EquipmentCodec struct{}

func (EquipmentCodec) Header() []string {
	return []string{"aud_id", "status", "last_update", "note"}
}

func (EquipmentCodec) Fields(e Equipment) []string {
	return []string{e.AuditoriumID, e.Status, e.LastUpdate, e.Note}
}

func (c EquipmentCodec) Parse(fields []string) (Equipment, error) {
	if len(fields) != len(c.Header()) {
		return Equipment{}, fmt.Errorf("equipment row has %d fields, want %d", len(fields), len(c.Header()))
	}

	return Equipment{
		AuditoriumID: fields[0],
		Status:       fields[1],
		LastUpdate:   fields[2],
		Note:         fields[3],
	}, nil
}
