// Package models holds the principal records persisted by the credential
// store. Participants and judges live in disjoint namespaces: a phone number
// and a username may coincide in value without conflict.
package models

// Role distinguishes the two principal kinds. Each role is an independent
// token signing domain.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleJudge       Role = "judge"
)

// Participant is a registered competitor. SecretHash is a bcrypt hash; the
// clear secret is never stored or logged.
type Participant struct {
	ID         int64
	Name       string
	Phone      string
	SecretHash string
}

// Judge is a registered official, keyed by username.
type Judge struct {
	ID         int64
	Name       string
	Username   string
	SecretHash string
}
