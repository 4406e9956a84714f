package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Hua202512/rundayapp/internal/db"
)

func TestCreateCommitDerivesFields(t *testing.T) {
	api, r, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/commits", map[string]any{
		"type":     string(db.ActivitySwimming),
		"duration": 30,
		"note":     "晨游",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	commit := body["commit"].(map[string]any)
	if commit["calories"].(float64) != 225 {
		t.Fatalf("expected calories 225, got %v", commit["calories"])
	}
	if commit["id"].(string) == "" {
		t.Fatal("expected assigned id")
	}
	// 打卡完成回到首页
	if body["view"] != "HOME" {
		t.Fatalf("expected view HOME, got %v", body["view"])
	}

	if got := api.ledger.Snapshot(); len(got) != 1 {
		t.Fatalf("expected 1 ledger record, got %d", len(got))
	}
}

func TestCreateCommitEmbedsLocationPrefix(t *testing.T) {
	api, r, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/commits", map[string]any{
		"type":      string(db.ActivityRunning),
		"duration":  25,
		"note":      "夜跑",
		"latitude":  31.23041,
		"longitude": 121.4737,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	record := api.ledger.Snapshot()[0]
	if !strings.HasPrefix(record.Note, "[31.2304, 121.4737] ") {
		t.Fatalf("expected location prefix, got %q", record.Note)
	}
}

func TestCreateCommitSyncsWeightToProfile(t *testing.T) {
	api, r, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/commits", map[string]any{
		"type":     string(db.ActivityStrength),
		"duration": 45,
		"weight":   80.2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	profile, err := api.profile.Get()
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if profile.InitialWeight != 80.2 {
		t.Fatalf("expected profile weight 80.2, got %v", profile.InitialWeight)
	}
}

func TestCreateCommitRejectsUnknownType(t *testing.T) {
	_, r, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/commits", map[string]any{
		"type":     "滑雪",
		"duration": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateCommitIgnoresSuppliedCalories(t *testing.T) {
	api, r, cleanup := setupTestDB(t)
	defer cleanup()

	record, err := api.ledger.Add(db.CommitDraft{Date: "2026/08/28", Type: db.ActivityCycling, Duration: 40})
	if err != nil {
		t.Fatalf("failed to seed commit: %v", err)
	}

	// 调用方带上 calories 也不会被采纳：无 duration 时保持原值
	w := doJSON(t, r, http.MethodPut, "/api/commits/"+record.ID, map[string]any{
		"note":     "revised",
		"calories": 999,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	updated, _ := api.ledger.Get(record.ID)
	if updated.Calories != record.Calories {
		t.Fatalf("expected calories unchanged at %d, got %d", record.Calories, updated.Calories)
	}
	if updated.Note != "revised" {
		t.Fatalf("expected note updated, got %q", updated.Note)
	}
}

func TestUpdateCommitUnknownIDReturnsNoContent(t *testing.T) {
	_, r, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPut, "/api/commits/missing", map[string]any{"note": "x"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
}

func TestDeleteCommitRequiresConfirmation(t *testing.T) {
	api, r, cleanup := setupTestDB(t)
	defer cleanup()

	record, err := api.ledger.Add(db.CommitDraft{Date: "2026/08/28", Type: db.ActivityRunning, Duration: 30})
	if err != nil {
		t.Fatalf("failed to seed commit: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/commits/"+record.ID, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without confirmation, got %d", w.Code)
	}
	if len(api.ledger.Snapshot()) != 1 {
		t.Fatal("expected ledger untouched after declined delete")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/commits/"+record.ID+"?confirm=true", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if len(api.ledger.Snapshot()) != 0 {
		t.Fatal("expected ledger emptied after confirmed delete")
	}
}
