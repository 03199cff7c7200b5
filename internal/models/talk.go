package models

import (
	"strings"
	"time"
)

type Talk struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Presenter             string    `gorm:"size:100;not null" json:"presenter"`
	Email                 string    `gorm:"size:255" json:"email"`
	Fullname              string    `gorm:"size:100" json:"fullname"`
	Title                 string    `gorm:"size:30;not null" json:"title"`
	Duration              int       `gorm:"not null" json:"duration"`
	Topic                 string    `gorm:"size:20;not null" json:"topic"`
	Description           string    `gorm:"size:100;not null" json:"description"`
	Status                string    `gorm:"size:10;not null;default:'pending';index" json:"status"`
	DateSubmitted         time.Time `json:"date_submitted"`
	ImageURL              string    `gorm:"size:512" json:"image_url"`
	SessionID             *uint     `gorm:"index" json:"session_id"`
	Session               *Session  `gorm:"foreignKey:SessionID;constraint:OnDelete:SET NULL" json:"session,omitempty"`
	UserID                *uint     `gorm:"index" json:"user_id"`
	HasPresentationURL    bool      `gorm:"not null;default:false" json:"has_presentation_url"`
	PresentationURL       string    `gorm:"size:512" json:"presentation_url,omitempty"`
	AllowArchive          bool      `gorm:"not null;default:false" json:"allow_archive"`
	ArchiveURL            string    `gorm:"size:512" json:"archive_url,omitempty"`
	PresentationStartTime *string   `gorm:"size:5" json:"presentation_start_time"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

const (
	TalkStatusPending  = "pending"
	TalkStatusApproved = "approved"
	TalkStatusRejected = "rejected"
)

func ValidTalkStatus(s string) bool {
	return s == TalkStatusPending || s == TalkStatusApproved || s == TalkStatusRejected
}

var TalkDurations = []int{5, 10, 15, 20}

func ValidTalkDuration(d int) bool {
	for _, v := range TalkDurations {
		if d == v {
			return true
		}
	}
	return false
}

var TalkTopics = []string{"tech", "career", "lifehack", "hobby", "other"}

func ValidTalkTopic(t string) bool {
	for _, v := range TalkTopics {
		if t == v {
			return true
		}
	}
	return false
}

// DisplayName prefers the registered full name for submitters from the
// trusted email domain, the free-form presenter handle otherwise.
func (t *Talk) DisplayName(trustedDomain string) string {
	if trustedDomain != "" && t.Fullname != "" &&
		strings.HasSuffix(t.Email, "@"+trustedDomain) {
		return t.Fullname
	}
	return t.Presenter
}
