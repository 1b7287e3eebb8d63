package services

import (
	"testing"
	"time"

	"github.com/Narayanansankar/tirubot/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewMemorySessionStore(0)

	if _, exists := store.Get("u1"); exists {
		t.Error("Unknown user should have no session")
	}

	session := store.Create("u1", "Priya")
	if session.MenuLevel != models.LevelLanguageSelect {
		t.Errorf("New session level = %q, want language select", session.MenuLevel)
	}
	if session.DisplayName != "Priya" {
		t.Errorf("DisplayName = %q", session.DisplayName)
	}

	got, exists := store.Get("u1")
	if !exists || got.UserID != "u1" {
		t.Fatal("Expected stored session back")
	}
	if store.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", store.ActiveCount())
	}

	store.Delete("u1")
	if _, exists := store.Get("u1"); exists {
		t.Error("Deleted session should be gone")
	}
	if store.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", store.ActiveCount())
	}
}

func TestGetTouchesLastActive(t *testing.T) {
	store := NewMemorySessionStore(0)
	session := store.Create("u1", "")
	session.LastActive = time.Now().Add(-time.Hour)

	got, _ := store.Get("u1")
	if time.Since(got.LastActive) > time.Minute {
		t.Error("Get should refresh LastActive")
	}
}

func TestIdleSessionsEvicted(t *testing.T) {
	store := NewMemorySessionStore(30 * time.Minute)
	defer store.Stop()

	store.Create("idle", "")
	store.Create("fresh", "")
	store.sessions["idle"].LastActive = time.Now().Add(-time.Hour)

	store.cleanupIdleSessions()

	if _, exists := store.sessions["idle"]; exists {
		t.Error("Idle session should have been evicted")
	}
	if _, exists := store.sessions["fresh"]; !exists {
		t.Error("Fresh session should survive cleanup")
	}
}
