package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `json:"comment_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryID   *uuid.UUID `json:"story_id" gorm:"type:uuid;index:idx_comments_story"`
	Story     *Story     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	EpisodeID *uuid.UUID `json:"episode_id" gorm:"type:uuid;index:idx_comments_episode"`
	Episode   *Episode   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	User      User       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	ParentID  *uuid.UUID `json:"parent_comment_id" gorm:"type:uuid;index"`
	Parent    *Comment   `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
	Text      string     `json:"comment_text" gorm:"type:text;not null"`
	Edited    bool       `json:"is_edited" gorm:"not null;default:false"`
	LikeCount int        `json:"comment_like_count" gorm:"not null;default:0;check:comment_like_count >= 0"`
	CreatedAt time.Time  `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type Like struct {
	ID        uuid.UUID  `json:"like_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryID   *uuid.UUID `json:"story_id" gorm:"type:uuid;uniqueIndex:uniq_like_story,where:story_id is not null"`
	Story     *Story     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	EpisodeID *uuid.UUID `json:"episode_id" gorm:"type:uuid;uniqueIndex:uniq_like_episode,where:episode_id is not null"`
	Episode   *Episode   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uniq_like_story;uniqueIndex:uniq_like_episode;index"`
	User      User       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time  `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Rating struct {
	ID        uuid.UUID  `json:"rating_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoryID   *uuid.UUID `json:"story_id" gorm:"type:uuid;uniqueIndex:uniq_rating_story,where:story_id is not null"`
	Story     *Story     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	EpisodeID *uuid.UUID `json:"episode_id" gorm:"type:uuid;uniqueIndex:uniq_rating_episode,where:episode_id is not null"`
	Episode   *Episode   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uniq_rating_story;uniqueIndex:uniq_rating_episode;index"`
	User      User       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Value     int        `json:"rating_value" gorm:"not null;check:rating_value between 1 and 5"`
	CreatedAt time.Time  `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type WatchProgress struct {
	ID              uuid.UUID `json:"continue_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uniq_watch"`
	User            User      `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	StoryID         uuid.UUID `json:"story_id" gorm:"type:uuid;not null"`
	Story           Story     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	EpisodeID       uuid.UUID `json:"episode_id" gorm:"type:uuid;not null;uniqueIndex:uniq_watch"`
	Episode         Episode   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	ProgressSeconds int       `json:"progress_seconds" gorm:"not null;default:0"`
	TotalDuration   *int      `json:"total_duration"`
	Completed       bool      `json:"completed" gorm:"not null;default:false"`
	LastWatchedAt   time.Time `json:"last_watched_at" gorm:"autoUpdateTime;index"`
}
