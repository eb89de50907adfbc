package domain

import (
	"errors"
	"time"
)

var (
	ErrMovieNotFound    = errors.New("was not found")
	ErrGenreNotFound    = errors.New("was not found")
	ErrDirectorNotFound = errors.New("was not found")
	ErrInvalidMovieID   = errors.New("invalid movie id")
)

// Genre is embedded in every movie that belongs to it.
type Genre struct {
	Name        string `json:"Name,omitempty"`
	Description string `json:"Description,omitempty"`
}

// Director is embedded in every movie they directed.
type Director struct {
	Name  string     `json:"Name,omitempty"`
	Bio   string     `json:"Bio,omitempty"`
	Birth *time.Time `json:"Birth,omitempty"`
	Death *time.Time `json:"Death,omitempty"`
}

// Movie is a catalogue entry. Movies are read-only through the API and
// loaded by the seeder.
type Movie struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	Actors      []string `json:"Actors"`
	ImagePath   string   `json:"ImagePath,omitempty"`
	Featured    bool     `json:"Featured"`
}

// Validate checks the fields the movies collection requires.
func (m Movie) Validate() error {
	if m.Title == "" {
		return &RequiredFieldError{Field: "Title"}
	}
	if m.Description == "" {
		return &RequiredFieldError{Field: "Description"}
	}
	return nil
}
