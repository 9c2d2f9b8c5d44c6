package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if len(strings.TrimSpace(r.Email)) == 0 {
		return errors.New("email must not be empty")
	}
	if len(strings.TrimSpace(r.Password)) == 0 {
		return errors.New("password must not be empty")
	}
	return nil
}

type JWTResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type JWTRefreshRequest struct {
	Refresh string `json:"refresh"`
}

func (r JWTRefreshRequest) Validate() error {
	if len(strings.TrimSpace(r.Refresh)) == 0 {
		return errors.New("refresh token must not be empty")
	}
	return nil
}

// JWTAccessResponse is the refresh endpoint payload: only a new access
// token is issued, the refresh token stays valid until its own expiry.
type JWTAccessResponse struct {
	Access string `json:"access"`
}
