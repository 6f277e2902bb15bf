// Package models holds the sport catalog entity.
package models

// Sport is a competition discipline, keyed by a unique title.
type Sport struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
