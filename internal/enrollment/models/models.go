// Package models holds the enrollment join entity. An enrollment is either
// absent or present: creation is guarded by the pair uniqueness constraint
// and removal only happens through the database cascade. There is no update
// transition.
package models

// Enrollment links a participant to a sport they have joined.
type Enrollment struct {
	ID            int64
	ParticipantID int64
	SportID       int64
}

// JudgeRow is one line of the judge's registration overview: a join across
// participant, sport, and enrollment.
type JudgeRow struct {
	ParticipantName  string `json:"name"`
	ParticipantPhone string `json:"phone"`
	SportTitle       string `json:"title"`
}
