package services

import (
	"context"
	"errors"

	"lightning-talks-backend/internal/apperrors"
	"lightning-talks-backend/internal/cache"
	"lightning-talks-backend/internal/clock"
	"lightning-talks-backend/internal/models"
	"lightning-talks-backend/internal/schedule"

	"gorm.io/gorm"
)

type SessionService struct {
	db    *gorm.DB
	cache *cache.Cache
	clk   clock.Clock
}

func NewSessionService(db *gorm.DB, c *cache.Cache, clk clock.Clock) *SessionService {
	return &SessionService{db: db, cache: c, clk: clk}
}

type SessionInput struct {
	SessionNumber *int   `json:"session_number"`
	Special       bool   `json:"special"`
	Date          string `json:"date"`
	Title         string `json:"title"`
	Venue         string `json:"venue"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ArchiveURL    string `json:"archive_url"`
}

func (s *SessionService) Create(ctx context.Context, input SessionInput) (*models.Session, error) {
	if input.SessionNumber == nil && !input.Special {
		return nil, apperrors.Validation("session_number is required")
	}
	if input.SessionNumber != nil && *input.SessionNumber <= 0 {
		return nil, apperrors.Validation("session_number must be positive")
	}
	if input.Date == "" {
		return nil, apperrors.Validation("date is required")
	}
	if !schedule.ValidDate(input.Date) {
		return nil, apperrors.Validation("date must be formatted YYYY-MM-DD")
	}
	if input.Venue == "" {
		return nil, apperrors.Validation("venue is required")
	}

	startTime := input.StartTime
	if startTime == "" {
		startTime = schedule.WindowStart
	}
	endTime := input.EndTime
	if endTime == "" {
		endTime = schedule.WindowEnd
	}
	if !schedule.ValidRange(startTime, endTime) {
		return nil, apperrors.Validation(
			"start and end times must lie within %s-%s with start before end",
			schedule.WindowStart, schedule.WindowEnd)
	}

	// Advisory fast-fail; the unique index on session_number is authoritative
	// when two creates race past this check.
	if input.SessionNumber != nil {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Session{}).
			Where("session_number = ?", *input.SessionNumber).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.Storage("count sessions", err)
		}
		if count > 0 {
			return nil, apperrors.Conflict("session number %d already exists", *input.SessionNumber)
		}
	}

	session := models.Session{
		SessionNumber: input.SessionNumber,
		Date:          input.Date,
		Title:         input.Title,
		Venue:         input.Venue,
		StartTime:     startTime,
		EndTime:       endTime,
		ArchiveURL:    input.ArchiveURL,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && input.SessionNumber != nil {
			return nil, apperrors.Conflict("session number %d already exists", *input.SessionNumber)
		}
		return nil, apperrors.Storage("create session", err)
	}

	s.invalidate(ctx)
	return &session, nil
}

type SessionUpdateInput struct {
	ID            uint    `json:"id" binding:"required"`
	SessionNumber *int    `json:"session_number"`
	Special       *bool   `json:"special"`
	Date          *string `json:"date"`
	Title         *string `json:"title"`
	Venue         *string `json:"venue"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	ArchiveURL    *string `json:"archive_url"`
}

func (s *SessionService) Update(ctx context.Context, input SessionUpdateInput) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session %d not found", input.ID)
		}
		return nil, apperrors.Storage("load session", err)
	}

	if input.Special != nil && *input.Special {
		session.SessionNumber = nil
	} else if input.SessionNumber != nil {
		if *input.SessionNumber <= 0 {
			return nil, apperrors.Validation("session_number must be positive")
		}
		// Only a collision with a different session is an error; renumbering a
		// session to its own number is a no-op.
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Session{}).
			Where("session_number = ? AND id <> ?", *input.SessionNumber, session.ID).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.Storage("count sessions", err)
		}
		if count > 0 {
			return nil, apperrors.Conflict("session number %d already exists", *input.SessionNumber)
		}
		session.SessionNumber = input.SessionNumber
	}

	if input.Date != nil {
		if !schedule.ValidDate(*input.Date) {
			return nil, apperrors.Validation("date must be formatted YYYY-MM-DD")
		}
		session.Date = *input.Date
	}
	if input.Title != nil {
		session.Title = *input.Title
	}
	if input.Venue != nil {
		if *input.Venue == "" {
			return nil, apperrors.Validation("venue is required")
		}
		session.Venue = *input.Venue
	}
	if input.StartTime != nil {
		session.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		session.EndTime = *input.EndTime
	}
	if input.ArchiveURL != nil {
		session.ArchiveURL = *input.ArchiveURL
	}

	// The window is re-checked on every update, not only when times change.
	if !schedule.ValidRange(session.StartTime, session.EndTime) {
		return nil, apperrors.Validation(
			"start and end times must lie within %s-%s with start before end",
			schedule.WindowStart, schedule.WindowEnd)
	}

	if err := s.db.WithContext(ctx).Save(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && session.SessionNumber != nil {
			return nil, apperrors.Conflict("session number %d already exists", *session.SessionNumber)
		}
		return nil, apperrors.Storage("update session", err)
	}

	s.invalidate(ctx)
	return &session, nil
}

// Delete removes a session and orphans its talks in one transaction. Talks
// are never cascade-deleted; their session_id is set to null so submitter
// content survives removal of a mis-created session.
func (s *SessionService) Delete(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.Storage("begin delete session", tx.Error)
	}

	var session models.Session
	if err := tx.First(&session, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("session %d not found", id)
		}
		return apperrors.Storage("load session", err)
	}

	if err := tx.Model(&models.Talk{}).
		Where("session_id = ?", id).
		Update("session_id", nil).Error; err != nil {
		tx.Rollback()
		return apperrors.Storage("orphan talks", err)
	}

	if err := tx.Delete(&session).Error; err != nil {
		tx.Rollback()
		return apperrors.Storage("delete session", err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.Storage("commit delete session", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *SessionService) Get(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session %d not found", id)
		}
		return nil, apperrors.Storage("load session", err)
	}
	return &session, nil
}

// List returns every session when includeAll is set (admin view, most recent
// first) or only sessions dated today or later (submission view, next
// upcoming first). "Today" is computed once per call as a date-only string.
func (s *SessionService) List(ctx context.Context, includeAll bool) ([]models.Session, error) {
	var sessions []models.Session
	q := s.db.WithContext(ctx).Model(&models.Session{})
	if includeAll {
		q = q.Order("date DESC").Order("session_number DESC")
	} else {
		today := schedule.Today(s.clk.Now())
		q = q.Where("date >= ?", today).Order("date ASC").Order("session_number ASC")
	}
	if err := q.Find(&sessions).Error; err != nil {
		return nil, apperrors.Storage("list sessions", err)
	}
	return sessions, nil
}

// AvailableSession is the reduced shape the submission form's session picker
// consumes.
type AvailableSession struct {
	ID            uint   `json:"id"`
	SessionNumber *int   `json:"session_number"`
	Date          string `json:"date"`
	Title         string `json:"title"`
	Venue         string `json:"venue"`
	DisplayText   string `json:"display_text"`
	TimeRange     string `json:"time_range"`
}

func (s *SessionService) Available(ctx context.Context, includeAll bool) ([]AvailableSession, error) {
	key := cache.KeyAvailableSessions
	if includeAll {
		key = cache.KeyAvailableSessionsAll
	}
	var cached []AvailableSession
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	sessions, err := s.List(ctx, includeAll)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableSession, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, AvailableSession{
			ID:            sess.ID,
			SessionNumber: sess.SessionNumber,
			Date:          sess.Date,
			Title:         sess.DisplayTitle(),
			Venue:         sess.Venue,
			DisplayText:   sess.DisplayText(),
			TimeRange:     sess.TimeRange(),
		})
	}

	s.cache.Set(ctx, key, out)
	return out, nil
}

func (s *SessionService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx,
		cache.KeyAvailableSessions,
		cache.KeyAvailableSessionsAll,
		cache.KeyScheduleDates,
	)
}
