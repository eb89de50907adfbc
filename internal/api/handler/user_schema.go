package handler

import (
	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

// userRequest is the body of POST /users and PUT /users/:Username.
// JSON, form and urlencoded bodies are accepted.
type userRequest struct {
	Username string `json:"Username" form:"Username"`
	Password string `json:"Password" form:"Password"`
	Email    string `json:"Email"    form:"Email"`
	Birthday string `json:"Birthday" form:"Birthday"`
}

func (r userRequest) rules() []rule {
	return []rule{
		{Param: "Username", Value: r.Username, Tag: "min=5", Msg: "Username is required"},
		{Param: "Username", Value: r.Username, Tag: "alphanum", Msg: "Username contains non alphanumeric characters - not allowed."},
		{Param: "Password", Value: r.Password, Tag: "required", Msg: "Password is required"},
		{Param: "Email", Value: r.Email, Tag: "email", Msg: "Email does not appear to be valid"},
		{Param: "Birthday", Value: r.Birthday, Tag: "omitempty,date", Msg: "Birthday must be a valid date"},
	}
}

// toInput assumes the request has passed validation.
func (r userRequest) toInput() (ports.UserInput, error) {
	birthday, err := domain.ParseDate(r.Birthday)
	if err != nil {
		return ports.UserInput{}, err
	}
	return ports.UserInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Birthday: birthday,
	}, nil
}

type loginRequest struct {
	Username string `json:"Username" form:"Username" query:"Username"`
	Password string `json:"Password" form:"Password" query:"Password"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}
