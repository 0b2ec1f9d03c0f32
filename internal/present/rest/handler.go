package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/present/rest/middleware"
	"github.com/fablestream/fablestream/internal/present/rest/presenter"
	"github.com/fablestream/fablestream/internal/service"
	"github.com/fablestream/fablestream/internal/usecase"
)

// UserGetter is the slice of user storage the REST layer needs for the
// development token endpoint.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type Handler struct {
	catalog  *usecase.CatalogUsecase
	likes    *usecase.LikeUsecase
	ratings  *usecase.RatingUsecase
	comments *usecase.CommentUsecase
	watch    *usecase.WatchUsecase
	auth     *service.AuthService
	counter  *service.CounterService
	users    UserGetter
	db       *gorm.DB
	rdb      *redis.Client
}

// NewHandler wires the REST surface. counter, users, db and rdb may be nil;
// the endpoints backed by them degrade or report accordingly.
func NewHandler(
	catalog *usecase.CatalogUsecase,
	likes *usecase.LikeUsecase,
	ratings *usecase.RatingUsecase,
	comments *usecase.CommentUsecase,
	watch *usecase.WatchUsecase,
	auth *service.AuthService,
	counter *service.CounterService,
	users UserGetter,
	db *gorm.DB,
	rdb *redis.Client,
) *Handler {
	return &Handler{
		catalog:  catalog,
		likes:    likes,
		ratings:  ratings,
		comments: comments,
		watch:    watch,
		auth:     auth,
		counter:  counter,
		users:    users,
		db:       db,
		rdb:      rdb,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authmw := middleware.NewAuthMiddleware(h.auth)

	e.GET("/health", h.health)

	api := e.Group("/api/v1")

	api.POST("/auth/token", h.mintToken)
	api.GET("/auth/me", h.me, authmw.Required)

	api.GET("/stories", h.listStories, authmw.Optional)
	api.GET("/stories/:story_id", h.getStory, authmw.Optional)
	api.GET("/stories/:story_id/episodes", h.listEpisodes, authmw.Optional)
	api.GET("/episodes/:episode_id", h.getEpisode, authmw.Optional)

	api.POST("/likes/story/:story_id/toggle", h.toggleStoryLike, authmw.Required)
	api.POST("/likes/episode/:episode_id/toggle", h.toggleEpisodeLike, authmw.Required)
	api.GET("/likes/me", h.listOwnLikes, authmw.Required)
	api.GET("/likes/story/:story_id/me", h.getOwnStoryLike, authmw.Required)
	api.GET("/likes/episode/:episode_id/me", h.getOwnEpisodeLike, authmw.Required)
	api.GET("/likes/story/:story_id", h.listStoryLikes)
	api.GET("/likes/episode/:episode_id", h.listEpisodeLikes)
	api.DELETE("/likes/:like_id", h.deleteLike, authmw.Required)

	api.POST("/ratings/story/:story_id", h.upsertStoryRating, authmw.Required)
	api.POST("/ratings/episode/:episode_id", h.upsertEpisodeRating, authmw.Required)
	api.GET("/ratings/me", h.listOwnRatings, authmw.Required)
	api.GET("/ratings/story/:story_id/me", h.getOwnStoryRating, authmw.Required)
	api.GET("/ratings/episode/:episode_id/me", h.getOwnEpisodeRating, authmw.Required)
	api.GET("/ratings/story/:story_id", h.listStoryRatings)
	api.GET("/ratings/episode/:episode_id", h.listEpisodeRatings)
	api.PATCH("/ratings/:rating_id", h.updateRating, authmw.Required)
	api.DELETE("/ratings/:rating_id", h.deleteRating, authmw.Required)

	api.POST("/comments", h.createComment, authmw.Required)
	api.PATCH("/comments/:comment_id", h.updateComment, authmw.Required)
	api.DELETE("/comments/:comment_id", h.deleteComment, authmw.Required)
	api.GET("/comments/story/:story_id", h.listStoryComments)
	api.GET("/comments/episode/:episode_id", h.listEpisodeComments)

	api.POST("/continue-watching/progress", h.saveProgress, authmw.Required)
	api.POST("/continue-watching/:episode_id/complete", h.markCompleted, authmw.Required)
	api.GET("/continue-watching", h.listProgress, authmw.Required)
	api.GET("/continue-watching/:episode_id", h.getProgress, authmw.Required)
	api.DELETE("/continue-watching/:continue_id", h.deleteProgress, authmw.Required)
}

func requestIdentity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Request().Context().Value(domain.IdentityCtxKey).(domain.Identity)
	return identity, ok
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.UUID{}, domain.InvalidInputError{Reason: name + " must be a uuid"}
	}
	return id, nil
}

// respondError translates the domain error taxonomy onto HTTP. Anything not
// recognized is a 500 with the detail kept to the logs.
func (h *Handler) respondError(c echo.Context, err error) error {
	var invalid domain.InvalidInputError
	var notFound domain.NotFoundError
	switch {
	case errors.As(err, &invalid):
		return presenter.BadRequestMessage(c, invalid.Error())
	case errors.Is(err, domain.ErrForbidden):
		return presenter.Forbidden(c)
	case errors.As(err, &notFound):
		return presenter.NotFound(c, notFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "not found")
	default:
		return presenter.InternalError(c, err)
	}
}

// --- health ---

func (h *Handler) health(c echo.Context) error {
	ctx := c.Request().Context()
	report := map[string]string{"status": "ok"}

	if h.db != nil {
		report["postgres"] = "ok"
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			report["postgres"] = "unreachable"
			report["status"] = "degraded"
		}
	}
	if h.counter != nil {
		report["redis"] = "ok"
		if err := h.counter.Ping(ctx); err != nil {
			report["redis"] = "unreachable"
			report["status"] = "degraded"
		}
	}
	return presenter.OK(c, report)
}

// --- auth ---

type mintTokenRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type mintTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// mintToken issues a credential for an existing user. Development fixture;
// production tokens come from the identity provider.
func (h *Handler) mintToken(c echo.Context) error {
	var req mintTokenRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}
	if req.UserID == uuid.Nil {
		return presenter.BadRequestMessage(c, "user_id is required")
	}

	user, err := h.users.GetByID(c.Request().Context(), req.UserID)
	if err != nil {
		return h.respondError(c, err)
	}

	token, err := h.auth.MintToken(user.ID, user.Email)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, mintTokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) me(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	return presenter.OK(c, identity)
}

// --- catalog ---

func (h *Handler) listStories(c echo.Context) error {
	var query struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}
	if err := c.Bind(&query); err != nil {
		return presenter.BadRequestMessage(c, "invalid pagination parameters")
	}

	stories, err := h.catalog.ListStories(c.Request().Context(), query.Offset, query.Limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"stories": stories})
}

func (h *Handler) getStory(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	story, err := h.catalog.GetStory(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, story)
}

func (h *Handler) listEpisodes(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	episodes, err := h.catalog.ListEpisodes(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"episodes": episodes})
}

func (h *Handler) getEpisode(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	episode, err := h.catalog.GetEpisode(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, episode)
}

// --- likes ---

func (h *Handler) toggleLike(c echo.Context, target domain.TargetRef) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	ctx := c.Request().Context()

	result, err := h.likes.Toggle(ctx, identity.Subject, target)
	if err != nil {
		return h.respondError(c, err)
	}

	// Counter updates are best effort; the like row already committed.
	if h.counter != nil {
		var cerr error
		if result.Liked {
			cerr = h.counter.IncrementLikes(ctx, target)
		} else {
			cerr = h.counter.DecrementLikes(ctx, target)
		}
		if cerr != nil {
			log.Warn().Err(cerr).Msg("like counter update failed")
		}
	}
	return presenter.OK(c, result)
}

func (h *Handler) toggleStoryLike(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.toggleLike(c, domain.StoryTarget(id))
}

func (h *Handler) toggleEpisodeLike(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.toggleLike(c, domain.EpisodeTarget(id))
}

func (h *Handler) listOwnLikes(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	likes, err := h.likes.ListOwn(c.Request().Context(), identity.Subject)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"likes": likes})
}

func (h *Handler) getOwnLike(c echo.Context, target domain.TargetRef) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	like, err := h.likes.GetOwn(c.Request().Context(), identity.Subject, target)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, like)
}

func (h *Handler) getOwnStoryLike(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.getOwnLike(c, domain.StoryTarget(id))
}

func (h *Handler) getOwnEpisodeLike(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.getOwnLike(c, domain.EpisodeTarget(id))
}

// listLikes serves the public view of a target's likes. The count prefers the
// redis counter and falls back to the row count when the counter is cold or
// unavailable.
func (h *Handler) listLikes(c echo.Context, target domain.TargetRef) error {
	ctx := c.Request().Context()

	likes, err := h.likes.ListByTarget(ctx, target)
	if err != nil {
		return h.respondError(c, err)
	}

	count := int64(len(likes))
	if h.counter != nil {
		if n, err := h.counter.Likes(ctx, target); err == nil && n > 0 {
			count = n
		}
	}
	return presenter.OK(c, map[string]any{"likes": likes, "count": count})
}

func (h *Handler) listStoryLikes(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listLikes(c, domain.StoryTarget(id))
}

func (h *Handler) listEpisodeLikes(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listLikes(c, domain.EpisodeTarget(id))
}

func (h *Handler) deleteLike(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "like_id")
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.likes.Delete(c.Request().Context(), identity.Subject, id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"message": "like removed"})
}

// --- ratings ---

type ratingRequest struct {
	Value int `json:"rating_value"`
}

func (h *Handler) upsertRating(c echo.Context, target domain.TargetRef) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	rating, err := h.ratings.Upsert(c.Request().Context(), identity.Subject, target, req.Value)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, rating)
}

func (h *Handler) upsertStoryRating(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.upsertRating(c, domain.StoryTarget(id))
}

func (h *Handler) upsertEpisodeRating(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.upsertRating(c, domain.EpisodeTarget(id))
}

func (h *Handler) listOwnRatings(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	ratings, err := h.ratings.ListOwn(c.Request().Context(), identity.Subject)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"ratings": ratings})
}

func (h *Handler) getOwnRating(c echo.Context, target domain.TargetRef) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	rating, err := h.ratings.GetOwn(c.Request().Context(), identity.Subject, target)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, rating)
}

func (h *Handler) getOwnStoryRating(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.getOwnRating(c, domain.StoryTarget(id))
}

func (h *Handler) getOwnEpisodeRating(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.getOwnRating(c, domain.EpisodeTarget(id))
}

func (h *Handler) listRatings(c echo.Context, target domain.TargetRef) error {
	ratings, err := h.ratings.ListByTarget(c.Request().Context(), target)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"ratings": ratings})
}

func (h *Handler) listStoryRatings(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listRatings(c, domain.StoryTarget(id))
}

func (h *Handler) listEpisodeRatings(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listRatings(c, domain.EpisodeTarget(id))
}

func (h *Handler) updateRating(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "rating_id")
	if err != nil {
		return h.respondError(c, err)
	}
	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	rating, err := h.ratings.Update(c.Request().Context(), identity.Subject, id, req.Value)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, rating)
}

func (h *Handler) deleteRating(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "rating_id")
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.ratings.Delete(c.Request().Context(), identity.Subject, id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"message": "rating removed"})
}

// --- comments ---

type commentCreateRequest struct {
	StoryID   *uuid.UUID `json:"story_id"`
	EpisodeID *uuid.UUID `json:"episode_id"`
	ParentID  *uuid.UUID `json:"parent_comment_id"`
	Text      string     `json:"comment_text"`
}

type commentUpdateRequest struct {
	Text string `json:"comment_text"`
}

func (h *Handler) createComment(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	var req commentCreateRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	input := usecase.CommentCreateInput{
		Target:   domain.TargetRef{StoryID: req.StoryID, EpisodeID: req.EpisodeID},
		ParentID: req.ParentID,
		Text:     req.Text,
	}
	comment, err := h.comments.Create(c.Request().Context(), identity.Subject, input)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.Created(c, comment)
}

func (h *Handler) updateComment(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "comment_id")
	if err != nil {
		return h.respondError(c, err)
	}
	var req commentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	comment, err := h.comments.Update(c.Request().Context(), identity.Subject, id, req.Text)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, comment)
}

func (h *Handler) deleteComment(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "comment_id")
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.comments.Delete(c.Request().Context(), identity.Subject, id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"message": "comment removed"})
}

func (h *Handler) listComments(c echo.Context, target domain.TargetRef) error {
	comments, err := h.comments.ListByTarget(c.Request().Context(), target)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"comments": comments})
}

func (h *Handler) listStoryComments(c echo.Context) error {
	id, err := parseID(c, "story_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listComments(c, domain.StoryTarget(id))
}

func (h *Handler) listEpisodeComments(c echo.Context) error {
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	return h.listComments(c, domain.EpisodeTarget(id))
}

// --- continue watching ---

type progressRequest struct {
	StoryID         uuid.UUID `json:"story_id"`
	EpisodeID       uuid.UUID `json:"episode_id"`
	ProgressSeconds int       `json:"progress_seconds"`
	TotalDuration   *int      `json:"total_duration"`
}

func (h *Handler) saveProgress(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	var req progressRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}
	if req.StoryID == uuid.Nil || req.EpisodeID == uuid.Nil {
		return presenter.BadRequestMessage(c, "story_id and episode_id are required")
	}

	entry, err := h.watch.SaveProgress(c.Request().Context(), identity.Subject, usecase.ProgressInput{
		StoryID:         req.StoryID,
		EpisodeID:       req.EpisodeID,
		ProgressSeconds: req.ProgressSeconds,
		TotalDuration:   req.TotalDuration,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, entry)
}

func (h *Handler) markCompleted(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	entry, err := h.watch.MarkCompleted(c.Request().Context(), identity.Subject, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, entry)
}

func (h *Handler) listProgress(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	entries, err := h.watch.ListOwn(c.Request().Context(), identity.Subject)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"continue_watching": entries})
}

func (h *Handler) getProgress(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "episode_id")
	if err != nil {
		return h.respondError(c, err)
	}
	entry, err := h.watch.GetForEpisode(c.Request().Context(), identity.Subject, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, entry)
}

func (h *Handler) deleteProgress(c echo.Context) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseID(c, "continue_id")
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.watch.Delete(c.Request().Context(), identity.Subject, id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.OK(c, map[string]any{"message": "entry removed"})
}
