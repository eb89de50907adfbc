package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound       = errors.New("was not found")
	ErrUserExists         = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRequiredField      = errors.New("is required")
)

// RequiredFieldError reports a document field that must not be empty.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, ErrRequiredField)
}

func (e *RequiredFieldError) Unwrap() error { return ErrRequiredField }

// User models a registered account. PasswordHash is never rendered.
type User struct {
	ID              string     `json:"_id,omitempty"`
	Username        string     `json:"Username"`
	PasswordHash    string     `json:"-"`
	Email           string     `json:"Email"`
	Birthday        *time.Time `json:"Birthday,omitempty"`
	FavouriteMovies []string   `json:"FavouriteMovies"`
}

// NewUser builds a user document, rejecting empty required fields.
func NewUser(username, passwordHash, email string, birthday *time.Time) (*User, error) {
	switch {
	case username == "":
		return nil, &RequiredFieldError{Field: "Username"}
	case passwordHash == "":
		return nil, &RequiredFieldError{Field: "Password"}
	case email == "":
		return nil, &RequiredFieldError{Field: "Email"}
	}
	return &User{
		Username:        username,
		PasswordHash:    passwordHash,
		Email:           email,
		Birthday:        birthday,
		FavouriteMovies: []string{},
	}, nil
}

// HasFavourite reports whether movieID is in the user's favourites.
func (u *User) HasFavourite(movieID string) bool {
	for _, id := range u.FavouriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
