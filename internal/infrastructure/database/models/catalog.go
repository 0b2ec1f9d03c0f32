package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID        uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Story struct {
	ID           uuid.UUID      `json:"story_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string         `json:"title" gorm:"type:text;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Thumbnail    string         `json:"thumbnail" gorm:"type:text"`
	Genres       pq.StringArray `json:"genres" gorm:"type:text[]"`
	AvgRating    float64        `json:"avg_rating" gorm:"type:numeric(2,1);default:0"`
	LikesCount   int            `json:"likes_count" gorm:"default:0"`
	CommentCount int            `json:"comments_count" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime;index"`
}

type Episode struct {
	ID              uuid.UUID  `json:"episode_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryID         uuid.UUID  `json:"story_id" gorm:"type:uuid;not null;index"`
	Story           Story      `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title           string     `json:"title" gorm:"type:text;not null"`
	Description     string     `json:"description" gorm:"type:text"`
	StreamURL       string     `json:"stream_url" gorm:"type:text;not null"`
	DurationSeconds *int       `json:"duration_seconds"`
	ReleaseDate     *time.Time `json:"release_date" gorm:"type:timestamp with time zone"`
	AvgRating       float64    `json:"avg_rating" gorm:"type:numeric(2,1);default:0"`
	LikesCount      int        `json:"likes_count" gorm:"default:0"`
	CreatedAt       time.Time  `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
