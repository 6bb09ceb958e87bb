package domain

import "fmt"

type Auditorium struct {
	ID   string
	Name string
}

type AuditoriumCodec struct{}

func (AuditoriumCodec) Header() []string {
	return []string{"aud_id", "name"}
}

func (AuditoriumCodec) Fields(a Auditorium) []string {
	return []string{a.ID, a.Name}
}

func (c AuditoriumCodec) Parse(fields []string) (Auditorium, error) {
	if len(fields) != len(c.Header()) {
		return Auditorium{}, fmt.Errorf("auditorium row has %d fields, want %d", len(fields), len(c.Header()))
	}

	return Auditorium{ID: fields[0], Name: fields[1]}, nil
}
