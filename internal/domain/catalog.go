package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story is a series in the catalog. Read-only from this service's point of
// view; ingestion happens elsewhere.
type Story struct {
	ID           uuid.UUID `json:"story_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	Genres       []string  `json:"genres,omitempty"`
	AvgRating    float64   `json:"avg_rating"`
	LikesCount   int       `json:"likes_count"`
	CommentCount int       `json:"comments_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Episode is a single installment of a story.
type Episode struct {
	ID              uuid.UUID  `json:"episode_id"`
	StoryID         uuid.UUID  `json:"story_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	StreamURL       string     `json:"stream_url"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	AvgRating       float64    `json:"avg_rating"`
	LikesCount      int        `json:"likes_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// User is the application-side user row. Identity lives with the external
// provider; this is only what the catalog needs for attribution.
type User struct {
	ID        uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
