package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	talk := Talk{
		Presenter: "alice",
		Fullname:  "Alice Tanaka",
		Email:     "alice@example.co.jp",
	}

	assert.Equal(t, "Alice Tanaka", talk.DisplayName("example.co.jp"))
	assert.Equal(t, "alice", talk.DisplayName("other.co.jp"))
	assert.Equal(t, "alice", talk.DisplayName(""))

	noFullname := Talk{Presenter: "bob", Email: "bob@example.co.jp"}
	assert.Equal(t, "bob", noFullname.DisplayName("example.co.jp"))
}

func TestValidTalkStatus(t *testing.T) {
	assert.True(t, ValidTalkStatus(TalkStatusPending))
	assert.True(t, ValidTalkStatus(TalkStatusApproved))
	assert.True(t, ValidTalkStatus(TalkStatusRejected))
	assert.False(t, ValidTalkStatus("maybe"))
	assert.False(t, ValidTalkStatus(""))
}

func TestValidTalkDuration(t *testing.T) {
	for _, d := range TalkDurations {
		assert.True(t, ValidTalkDuration(d))
	}
	assert.False(t, ValidTalkDuration(0))
	assert.False(t, ValidTalkDuration(7))
	assert.False(t, ValidTalkDuration(25))
}

func TestSessionDisplay(t *testing.T) {
	n := 12
	session := Session{
		SessionNumber: &n,
		Date:          "2025-07-20",
		Venue:         "Shibuya",
		StartTime:     "16:30",
		EndTime:       "18:00",
	}

	assert.Equal(t, "第12回 LT会", session.DisplayTitle())
	assert.Equal(t, "第12回 - 2025-07-20 (Shibuya)", session.DisplayText())
	assert.Equal(t, "16:30-18:00", session.TimeRange())

	session.Title = "夏のLT会"
	assert.Equal(t, "夏のLT会", session.DisplayTitle())

	special := Session{Date: "2025-12-30", Venue: "Online", Title: ""}
	assert.Equal(t, "特別回", special.DisplayTitle())
}
