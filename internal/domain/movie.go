package domain

import (
	"fmt"
	"strconv"
)

type MovieStatus string

const (
	MovieActive   MovieStatus = "Active"
	MovieInactive MovieStatus = "Inactive"
)

type Movie struct {
	ID       string
	Title    string
	Rating   string
	Duration int
	Language string
	Status   MovieStatus
}

// MovieCodec maps movies onto the delimited row layout
// movie_id,title,rating,duration,language,status.
type MovieCodec struct{}

func (MovieCodec) Header() []string {
	return []string{"movie_id", "title", "rating", "duration", "language", "status"}
}

func (MovieCodec) Fields(m Movie) []string {
	return []string{m.ID, m.Title, m.Rating, strconv.Itoa(m.Duration), m.Language, string(m.Status)}
}

func (c MovieCodec) Parse(fields []string) (Movie, error) {
	if len(fields) != len(c.Header()) {
		return Movie{}, fmt.Errorf("movie row has %d fields, want %d", len(fields), len(c.Header()))
	}

	duration, err := strconv.Atoi(fields[3])
	if err != nil {
		return Movie{}, fmt.Errorf("movie duration %q is not numeric", fields[3])
	}

	return Movie{
		ID:       fields[0],
		Title:    fields[1],
		Rating:   fields[2],
		Duration: duration,
		Language: fields[4],
		Status:   MovieStatus(fields[5]),
	}, nil
}
