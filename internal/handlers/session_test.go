package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lightning-talks-backend/internal/models"
	"lightning-talks-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

type SessionHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.User{}, &models.Session{}, &models.Talk{}))
	s.db = db

	clk := &fixedClock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}
	sessionService := services.NewSessionService(db, nil, clk)
	talkService := services.NewTalkService(db, nil, clk, nil, "")

	sessionHandler := NewSessionHandler(sessionService)
	talkHandler := NewTalkHandler(talkService)

	// Auth middleware is exercised separately; routes here are bare.
	r := gin.New()
	r.GET("/sessions", sessionHandler.ListSessions)
	r.POST("/sessions", sessionHandler.CreateSession)
	r.PUT("/sessions", sessionHandler.UpdateSession)
	r.DELETE("/sessions", sessionHandler.DeleteSession)
	r.GET("/available-sessions", sessionHandler.AvailableSessions)
	r.PATCH("/talk/:id", talkHandler.SetTalkStatus)
	s.router = r
}

func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SessionHandlerTestSuite) TestCreateSession() {
	w := s.request(http.MethodPost, "/sessions",
		`{"session_number": 10, "date": "2025-07-20", "venue": "Shibuya"}`)
	s.Equal(http.StatusCreated, w.Code)

	var created models.Session
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.NotZero(created.ID)
	s.Equal("16:30", created.StartTime)
	s.Equal("18:00", created.EndTime)
}

func (s *SessionHandlerTestSuite) TestCreateSessionValidationAndConflict() {
	w := s.request(http.MethodPost, "/sessions",
		`{"session_number": 10, "date": "2025-07-20", "venue": "Shibuya", "start_time": "12:00", "end_time": "13:00"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/sessions",
		`{"session_number": 10, "date": "2025-07-20", "venue": "Shibuya"}`)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/sessions",
		`{"session_number": 10, "date": "2025-08-01", "venue": "Shinjuku"}`)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *SessionHandlerTestSuite) TestUpdateSessionNotFound() {
	w := s.request(http.MethodPut, "/sessions", `{"id": 999, "venue": "Shinjuku"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SessionHandlerTestSuite) TestDeleteSession() {
	w := s.request(http.MethodPost, "/sessions",
		`{"session_number": 10, "date": "2025-07-20", "venue": "Shibuya"}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	var created models.Session
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = s.request(http.MethodDelete, "/sessions?id=abc", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodDelete, "/sessions?id=999", "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, "/sessions?id=1", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *SessionHandlerTestSuite) TestAvailableSessionsShape() {
	w := s.request(http.MethodPost, "/sessions",
		`{"session_number": 12, "date": "2025-07-20", "venue": "Shibuya"}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/available-sessions", "")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Sessions []services.AvailableSession `json:"sessions"`
		Total    int                         `json:"total"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Equal("第12回 - 2025-07-20 (Shibuya)", resp.Sessions[0].DisplayText)
	s.Equal("16:30-18:00", resp.Sessions[0].TimeRange)
}

func (s *SessionHandlerTestSuite) TestSetTalkStatus() {
	session := models.Session{SessionNumber: intPtr(1), Date: "2025-07-20", Venue: "Shibuya", StartTime: "16:30", EndTime: "18:00"}
	s.Require().NoError(s.db.Create(&session).Error)
	talk := models.Talk{Presenter: "alice", Title: "Go in five", Duration: 5, Topic: "tech", Description: "a quick tour of Go", Status: models.TalkStatusPending, SessionID: &session.ID}
	s.Require().NoError(s.db.Create(&talk).Error)

	w := s.request(http.MethodPatch, "/talk/abc", `{"status": "approved"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPatch, "/talk/999", `{"status": "approved"}`)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodPatch, "/talk/1", `{"status": "maybe"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPatch, "/talk/1", `{"status": "approved"}`)
	s.Equal(http.StatusOK, w.Code)

	var updated models.Talk
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	s.Equal(models.TalkStatusApproved, updated.Status)
}

func intPtr(i int) *int { return &i }
