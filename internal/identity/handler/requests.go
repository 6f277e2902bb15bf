package handler

import (
	"strings"

	dErrors "sportreg/pkg/domain-errors"
)

// RegisterParticipantRequest is the POST /register body.
type RegisterParticipantRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r RegisterParticipantRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || len(r.Name) > 100 {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if strings.TrimSpace(r.Phone) == "" || len(r.Phone) > 20 {
		return dErrors.New(dErrors.CodeInvalidInput, "phone is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "password is required")
	}
	return nil
}

// LoginParticipantRequest is the POST /login body.
type LoginParticipantRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r LoginParticipantRequest) Validate() error {
	if r.Phone == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "phone and password are required")
	}
	return nil
}

// RegisterJudgeRequest is the POST /judge/register body.
type RegisterJudgeRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterJudgeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || len(r.Name) > 100 {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if strings.TrimSpace(r.Username) == "" || len(r.Username) > 50 {
		return dErrors.New(dErrors.CodeInvalidInput, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "password is required")
	}
	return nil
}

// LoginJudgeRequest is the POST /judge/login body.
type LoginJudgeRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginJudgeRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "username and password are required")
	}
	return nil
}
