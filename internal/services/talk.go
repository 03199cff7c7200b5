package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"lightning-talks-backend/internal/apperrors"
	"lightning-talks-backend/internal/cache"
	"lightning-talks-backend/internal/clock"
	"lightning-talks-backend/internal/models"
	"lightning-talks-backend/internal/notify"
	"lightning-talks-backend/internal/schedule"

	"gorm.io/gorm"
)

type TalkService struct {
	db            *gorm.DB
	cache         *cache.Cache
	clk           clock.Clock
	notifier      *notify.Notifier
	trustedDomain string
}

func NewTalkService(db *gorm.DB, c *cache.Cache, clk clock.Clock, n *notify.Notifier, trustedDomain string) *TalkService {
	return &TalkService{db: db, cache: c, clk: clk, notifier: n, trustedDomain: trustedDomain}
}

type TalkInput struct {
	Presenter             string  `json:"presenter"`
	Email                 string  `json:"email"`
	Fullname              string  `json:"fullname"`
	Title                 string  `json:"title"`
	Duration              int     `json:"duration"`
	Topic                 string  `json:"topic"`
	Description           string  `json:"description"`
	ImageURL              string  `json:"image_url"`
	SessionID             *uint   `json:"session_id"`
	HasPresentationURL    bool    `json:"has_presentation_url"`
	PresentationURL       string  `json:"presentation_url"`
	AllowArchive          bool    `json:"allow_archive"`
	ArchiveURL            string  `json:"archive_url"`
	PresentationStartTime *string `json:"presentation_start_time"`
}

func validateTalkInput(input *TalkInput) error {
	if input.Presenter == "" {
		return apperrors.Validation("presenter is required")
	}
	if n := utf8.RuneCountInString(input.Title); n < 5 || n > 30 {
		return apperrors.Validation("title must be 5 to 30 characters")
	}
	if !models.ValidTalkDuration(input.Duration) {
		return apperrors.Validation("duration must be one of 5, 10, 15 or 20 minutes")
	}
	if !models.ValidTalkTopic(input.Topic) {
		return apperrors.Validation("unknown topic: %s", input.Topic)
	}
	if n := utf8.RuneCountInString(input.Description); n < 10 || n > 100 {
		return apperrors.Validation("description must be 10 to 100 characters")
	}
	if input.PresentationStartTime != nil && *input.PresentationStartTime != "" &&
		!schedule.WithinWindow(*input.PresentationStartTime) {
		return apperrors.Validation(
			"presentation start time must lie within %s-%s",
			schedule.WindowStart, schedule.WindowEnd)
	}
	return nil
}

// Create persists a submission with status forced to pending and the
// submission timestamp set server-side. The chat webhook is notified
// asynchronously; its outcome never affects the write.
func (s *TalkService) Create(ctx context.Context, input TalkInput, userID *uint) (*models.Talk, error) {
	if err := validateTalkInput(&input); err != nil {
		return nil, err
	}
	if input.SessionID != nil {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Session{}).
			Where("id = ?", *input.SessionID).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.Storage("check session", err)
		}
		if count == 0 {
			return nil, apperrors.Validation("session %d does not exist", *input.SessionID)
		}
	}

	talk := models.Talk{
		Presenter:             input.Presenter,
		Email:                 input.Email,
		Fullname:              input.Fullname,
		Title:                 input.Title,
		Duration:              input.Duration,
		Topic:                 input.Topic,
		Description:           input.Description,
		Status:                models.TalkStatusPending,
		DateSubmitted:         s.clk.Now(),
		ImageURL:              input.ImageURL,
		SessionID:             input.SessionID,
		UserID:                userID,
		HasPresentationURL:    input.HasPresentationURL,
		AllowArchive:          input.AllowArchive,
		PresentationStartTime: normalizeTime(input.PresentationStartTime),
	}
	// A gated link only exists while its flag is on.
	if input.HasPresentationURL {
		talk.PresentationURL = input.PresentationURL
	}
	if input.AllowArchive {
		talk.ArchiveURL = input.ArchiveURL
	}

	if err := s.db.WithContext(ctx).Create(&talk).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.Validation("session %d does not exist", *input.SessionID)
		}
		return nil, apperrors.Storage("create talk", err)
	}

	s.notifier.Notify(fmt.Sprintf("新しいLT申請: 「%s」 by %s (%d分)",
		talk.Title, talk.DisplayName(s.trustedDomain), talk.Duration))

	return &talk, nil
}

func (s *TalkService) List(ctx context.Context) ([]models.Talk, error) {
	var talks []models.Talk
	err := s.db.WithContext(ctx).
		Preload("Session").
		Order("date_submitted DESC").
		Find(&talks).Error
	if err != nil {
		return nil, apperrors.Storage("list talks", err)
	}
	return talks, nil
}

func (s *TalkService) ListByUser(ctx context.Context, userID uint) ([]models.Talk, error) {
	var talks []models.Talk
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Session").
		Order("date_submitted DESC").
		Find(&talks).Error
	if err != nil {
		return nil, apperrors.Storage("list talks by user", err)
	}
	return talks, nil
}

func (s *TalkService) Get(ctx context.Context, id uint) (*models.Talk, error) {
	var talk models.Talk
	err := s.db.WithContext(ctx).Preload("Session").First(&talk, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("talk %d not found", id)
		}
		return nil, apperrors.Storage("load talk", err)
	}
	return &talk, nil
}

// Update rewrites a talk's submitted fields. Only the owner (or an admin)
// may update; status and submission timestamp are not touched here.
func (s *TalkService) Update(ctx context.Context, id uint, userID uint, isAdmin bool, input TalkInput) (*models.Talk, error) {
	var talk models.Talk
	if err := s.db.WithContext(ctx).First(&talk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("talk %d not found", id)
		}
		return nil, apperrors.Storage("load talk", err)
	}
	if !isAdmin && (talk.UserID == nil || *talk.UserID != userID) {
		return nil, apperrors.Forbidden("talk %d is not yours", id)
	}
	if err := validateTalkInput(&input); err != nil {
		return nil, err
	}
	if input.SessionID != nil {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Session{}).
			Where("id = ?", *input.SessionID).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.Storage("check session", err)
		}
		if count == 0 {
			return nil, apperrors.Validation("session %d does not exist", *input.SessionID)
		}
	}

	talk.Presenter = input.Presenter
	talk.Email = input.Email
	talk.Fullname = input.Fullname
	talk.Title = input.Title
	talk.Duration = input.Duration
	talk.Topic = input.Topic
	talk.Description = input.Description
	talk.ImageURL = input.ImageURL
	talk.SessionID = input.SessionID
	talk.HasPresentationURL = input.HasPresentationURL
	talk.PresentationURL = ""
	if input.HasPresentationURL {
		talk.PresentationURL = input.PresentationURL
	}
	talk.AllowArchive = input.AllowArchive
	talk.ArchiveURL = ""
	if input.AllowArchive {
		talk.ArchiveURL = input.ArchiveURL
	}
	talk.PresentationStartTime = normalizeTime(input.PresentationStartTime)

	if err := s.db.WithContext(ctx).Save(&talk).Error; err != nil {
		return nil, apperrors.Storage("update talk", err)
	}
	return &talk, nil
}

// Delete removes a talk. The bound session, if any, is unaffected.
func (s *TalkService) Delete(ctx context.Context, id uint, userID uint, isAdmin bool) error {
	var talk models.Talk
	if err := s.db.WithContext(ctx).First(&talk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("talk %d not found", id)
		}
		return apperrors.Storage("load talk", err)
	}
	if !isAdmin && (talk.UserID == nil || *talk.UserID != userID) {
		return apperrors.Forbidden("talk %d is not yours", id)
	}
	if err := s.db.WithContext(ctx).Delete(&talk).Error; err != nil {
		return apperrors.Storage("delete talk", err)
	}
	return nil
}

// SetStatus moves a talk to any of the three review states. Transitions are
// permissive in every direction and setting the current status is a legal
// no-op; administrators use this to correct earlier decisions.
func (s *TalkService) SetStatus(ctx context.Context, id uint, status string) (*models.Talk, error) {
	if !models.ValidTalkStatus(status) {
		return nil, apperrors.Validation("status must be pending, approved or rejected")
	}

	var talk models.Talk
	if err := s.db.WithContext(ctx).Preload("Session").First(&talk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("talk %d not found", id)
		}
		return nil, apperrors.Storage("load talk", err)
	}

	if talk.Status != status {
		if err := s.db.WithContext(ctx).Model(&talk).Update("status", status).Error; err != nil {
			return nil, apperrors.Storage("update talk status", err)
		}
		talk.Status = status
	}

	s.cache.Invalidate(ctx, cache.KeyScheduleDates)
	return &talk, nil
}

// ScheduleEntry is one row of the public daily schedule.
type ScheduleEntry struct {
	models.Talk
	DisplayName string `json:"display_name"`
	IsLive      bool   `json:"is_live"`
}

// DailySchedule returns the approved talks bound to sessions on the given
// date, earliest start time first with unscheduled talks last. Orphaned
// talks have no session date and never appear here.
func (s *TalkService) DailySchedule(ctx context.Context, date string) ([]ScheduleEntry, error) {
	if date == "" {
		return nil, apperrors.Validation("date is required")
	}
	if !schedule.ValidDate(date) {
		return nil, apperrors.Validation("date must be formatted YYYY-MM-DD")
	}

	var talks []models.Talk
	err := s.db.WithContext(ctx).
		Joins("JOIN sessions ON sessions.id = talks.session_id").
		Where("talks.status = ? AND sessions.date = ?", models.TalkStatusApproved, date).
		Order("talks.presentation_start_time ASC NULLS LAST").
		Order("talks.id ASC").
		Preload("Session").
		Find(&talks).Error
	if err != nil {
		return nil, apperrors.Storage("load daily schedule", err)
	}

	now := s.clk.Now()
	entries := make([]ScheduleEntry, 0, len(talks))
	for _, t := range talks {
		entries = append(entries, ScheduleEntry{
			Talk:        t,
			DisplayName: t.DisplayName(s.trustedDomain),
			IsLive:      schedule.IsLive(now, date, t.PresentationStartTime, t.Duration),
		})
	}
	return entries, nil
}

type StartTimeUpdate struct {
	ID                    uint    `json:"id"`
	PresentationStartTime *string `json:"presentation_start_time"`
}

// BulkSetStartTimes assigns presentation start times for a batch of talks in
// one transaction, as the admin lays out a day's schedule.
func (s *TalkService) BulkSetStartTimes(ctx context.Context, updates []StartTimeUpdate) error {
	if len(updates) == 0 {
		return apperrors.Validation("no start time updates provided")
	}
	for _, u := range updates {
		if u.PresentationStartTime != nil && *u.PresentationStartTime != "" &&
			!schedule.WithinWindow(*u.PresentationStartTime) {
			return apperrors.Validation(
				"presentation start time for talk %d must lie within %s-%s",
				u.ID, schedule.WindowStart, schedule.WindowEnd)
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.Storage("begin bulk start time update", tx.Error)
	}
	for _, u := range updates {
		err := tx.Model(&models.Talk{}).
			Where("id = ?", u.ID).
			Update("presentation_start_time", normalizeTime(u.PresentationStartTime)).Error
		if err != nil {
			tx.Rollback()
			return apperrors.Storage("update talk start time", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.Storage("commit bulk start time update", err)
	}
	return nil
}

// ScheduleDates returns the distinct session dates that have at least one
// approved talk, ascending.
func (s *TalkService) ScheduleDates(ctx context.Context) ([]string, error) {
	var cached []string
	if s.cache.Get(ctx, cache.KeyScheduleDates, &cached) {
		return cached, nil
	}

	var dates []string
	err := s.db.WithContext(ctx).Model(&models.Talk{}).
		Joins("JOIN sessions ON sessions.id = talks.session_id").
		Where("talks.status = ?", models.TalkStatusApproved).
		Distinct().
		Order("sessions.date ASC").
		Pluck("sessions.date", &dates).Error
	if err != nil {
		return nil, apperrors.Storage("load schedule dates", err)
	}

	s.cache.Set(ctx, cache.KeyScheduleDates, dates)
	return dates, nil
}

func normalizeTime(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}
