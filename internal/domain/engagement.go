package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owned is implemented by every user-generated record. The ownership check
// is written once against this interface rather than once per record kind.
type Owned interface {
	OwnerID() uuid.UUID
}

// Comment is a user comment on a story or episode.
type Comment struct {
	ID        uuid.UUID  `json:"comment_id"`
	StoryID   *uuid.UUID `json:"story_id,omitempty"`
	EpisodeID *uuid.UUID `json:"episode_id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	ParentID  *uuid.UUID `json:"parent_comment_id,omitempty"`
	Text      string     `json:"comment_text"`
	Edited    bool       `json:"is_edited"`
	LikeCount int        `json:"comment_like_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c Comment) OwnerID() uuid.UUID { return c.UserID }

func (c Comment) Target() TargetRef {
	return TargetRef{StoryID: c.StoryID, EpisodeID: c.EpisodeID}
}

// Like marks a story or episode as liked. The owner x target pair is unique;
// liking twice removes the record again.
type Like struct {
	ID        uuid.UUID  `json:"like_id"`
	StoryID   *uuid.UUID `json:"story_id,omitempty"`
	EpisodeID *uuid.UUID `json:"episode_id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func (l Like) OwnerID() uuid.UUID { return l.UserID }

func (l Like) Target() TargetRef {
	return TargetRef{StoryID: l.StoryID, EpisodeID: l.EpisodeID}
}

// Rating is a 1..5 rating of a story or episode. The owner x target pair is
// unique; a repeat submission replaces the value in place.
type Rating struct {
	ID        uuid.UUID  `json:"rating_id"`
	StoryID   *uuid.UUID `json:"story_id,omitempty"`
	EpisodeID *uuid.UUID `json:"episode_id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	Value     int        `json:"rating_value"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r Rating) OwnerID() uuid.UUID { return r.UserID }

func (r Rating) Target() TargetRef {
	return TargetRef{StoryID: r.StoryID, EpisodeID: r.EpisodeID}
}

// WatchProgress is a continue-watching entry, unique per owner x episode.
type WatchProgress struct {
	ID              uuid.UUID `json:"continue_id"`
	UserID          uuid.UUID `json:"user_id"`
	StoryID         uuid.UUID `json:"story_id"`
	EpisodeID       uuid.UUID `json:"episode_id"`
	ProgressSeconds int       `json:"progress_seconds"`
	TotalDuration   *int      `json:"total_duration,omitempty"`
	Completed       bool      `json:"completed"`
	LastWatchedAt   time.Time `json:"last_watched_at"`
}

func (w WatchProgress) OwnerID() uuid.UUID { return w.UserID }
