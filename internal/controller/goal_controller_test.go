package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/internal/service"
	"team_goal_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("release")
	os.Exit(m.Run())
}

type stubGoalStore struct {
	byID map[uint]model.Goal
}

func (s *stubGoalStore) FindByDate(date time.Time) ([]model.Goal, error) {
	return nil, nil
}

func (s *stubGoalStore) FindByID(id uint) (*model.Goal, error) {
	goal, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &goal, nil
}

func (s *stubGoalStore) Create(goal *model.Goal) error {
	goal.ID = 1
	return nil
}

func (s *stubGoalStore) UpdateCompletion(id uint, completed bool) (int64, error) {
	return 1, nil
}

func newGoalRouter(store *stubGoalStore) *gin.Engine {
	router := gin.New()
	c := NewGoalController(service.NewGoalService(store))
	router.POST("/api/goals", c.CreateGoal)
	router.PATCH("/api/goals/:id/complete", c.CompleteGoal)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateGoalRequiresDescription(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{})

	w := doRequest(router, http.MethodPost, "/api/goals", `{"teamMemberId":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateGoalRejectsLongDescription(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{})

	long := strings.Repeat("a", 501)
	w := doRequest(router, http.MethodPost, "/api/goals", `{"teamMemberId":1,"description":"`+long+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 501-char description, got %d", w.Code)
	}
}

func TestCreateGoalRejectsDateOutsideOneYear(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{})

	farFuture := time.Now().AddDate(2, 0, 0).Format("2006-01-02")
	w := doRequest(router, http.MethodPost, "/api/goals", `{"teamMemberId":1,"description":"x","date":"`+farFuture+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range date, got %d", w.Code)
	}
}

func TestCreateGoalReturnsCreated(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{})

	w := doRequest(router, http.MethodPost, "/api/goals", `{"teamMemberId":1,"description":"write docs"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"isCompleted":false`) {
		t.Fatalf("expected incomplete goal in response, got %s", w.Body.String())
	}
}

func TestCompleteGoalInvalidID(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{})

	w := doRequest(router, http.MethodPatch, "/api/goals/abc/complete", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCompleteGoalUnknownIDReturnsNotFound(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{byID: map[uint]model.Goal{}})

	w := doRequest(router, http.MethodPatch, "/api/goals/42/complete", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCompleteGoalReturnsGoal(t *testing.T) {
	router := newGoalRouter(&stubGoalStore{byID: map[uint]model.Goal{7: {ID: 7, Description: "done"}}})

	w := doRequest(router, http.MethodPatch, "/api/goals/7/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"isCompleted":true`) {
		t.Fatalf("expected completed goal in response, got %s", w.Body.String())
	}
}
