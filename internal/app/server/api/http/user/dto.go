package user

import "taskpad/internal/domain/user"

// Credential fields are schema-optional on purpose: the user service owns
// validation so its messages reach the client as 400s.
type Credentials struct {
	Email    string `json:"email,omitempty" doc:"Login email"`
	Password string `json:"password,omitempty"`
}

type registerInput struct {
	Body Credentials
}

type registerOutput struct {
	Body user.Profile
}

type loginInput struct {
	Body Credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	User  user.Profile `json:"user"`
	Token string       `json:"token" doc:"Bearer token for subsequent requests"`
}

type meOutput struct {
	Body user.Profile
}
