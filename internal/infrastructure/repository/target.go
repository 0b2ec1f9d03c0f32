package repository

import (
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
)

// scopeTarget narrows a query to the story or episode named by the target.
// Callers validate the target before reaching the repository.
func scopeTarget(q *gorm.DB, target domain.TargetRef) *gorm.DB {
	if target.StoryID != nil {
		return q.Where("story_id = ?", target.StoryID)
	}
	return q.Where("episode_id = ?", target.EpisodeID)
}
