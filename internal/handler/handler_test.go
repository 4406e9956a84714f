package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Hua202512/rundayapp/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*API, *gin.Engine, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.StateEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	api, err := NewAPI(gdb, 512)
	if err != nil {
		t.Fatalf("failed to construct API: %v", err)
	}

	r := gin.New()
	r.Use(sessions.Sessions("rundayapp_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/api/profile", api.GetProfile)
	r.PUT("/api/profile", api.UpdateProfile)
	r.POST("/api/data/clear", api.ClearAllData)
	r.GET("/api/commits", api.ListCommits)
	r.POST("/api/commits", api.CreateCommit)
	r.PUT("/api/commits/:id", api.UpdateCommit)
	r.DELETE("/api/commits/:id", api.DeleteCommit)
	r.GET("/api/plan", api.GetPlan)
	r.GET("/api/plan/today", api.GetTodayPlan)
	r.PUT("/api/plan/:index", api.UpdatePlanSlot)
	r.GET("/api/stats/summary", api.GetStatsSummary)
	r.GET("/api/stats/series", api.GetStatsSeries)
	r.GET("/api/stats/distribution", api.GetStatsDistribution)
	r.GET("/api/view", api.GetActiveView)
	r.PUT("/api/view", api.SetActiveView)

	return api, r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
