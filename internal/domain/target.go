package domain

import "github.com/google/uuid"

// TargetRef points an engagement record at exactly one of a story or an
// episode, mirroring the check constraint on the engagement tables.
type TargetRef struct {
	StoryID   *uuid.UUID `json:"story_id,omitempty"`
	EpisodeID *uuid.UUID `json:"episode_id,omitempty"`
}

func StoryTarget(id uuid.UUID) TargetRef {
	return TargetRef{StoryID: &id}
}

func EpisodeTarget(id uuid.UUID) TargetRef {
	return TargetRef{EpisodeID: &id}
}

// Validate rejects targets that name both or neither parent.
func (t TargetRef) Validate() error {
	if (t.StoryID == nil) == (t.EpisodeID == nil) {
		return InvalidInputError{Reason: "either story_id or episode_id must be provided, but not both"}
	}
	return nil
}
