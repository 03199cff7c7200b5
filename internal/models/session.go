package models

import (
	"fmt"
	"time"
)

type Session struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SessionNumber *int      `gorm:"uniqueIndex" json:"session_number"`
	Date          string    `gorm:"size:10;not null;index" json:"date"`
	Title         string    `gorm:"size:255" json:"title"`
	Venue         string    `gorm:"size:255;not null" json:"venue"`
	StartTime     string    `gorm:"size:5;not null;default:'16:30'" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null;default:'18:00'" json:"end_time"`
	ArchiveURL    string    `gorm:"size:512" json:"archive_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DisplayTitle falls back to the conventional ordinal label when no explicit
// title was stored. Sessions without a number are special one-off events.
func (s *Session) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	if s.SessionNumber != nil {
		return fmt.Sprintf("第%d回 LT会", *s.SessionNumber)
	}
	return "特別回"
}

// DisplayText is the label shown in the submission-time session picker.
func (s *Session) DisplayText() string {
	if s.SessionNumber != nil {
		return fmt.Sprintf("第%d回 - %s (%s)", *s.SessionNumber, s.Date, s.Venue)
	}
	return fmt.Sprintf("%s - %s (%s)", s.DisplayTitle(), s.Date, s.Venue)
}

func (s *Session) TimeRange() string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}
