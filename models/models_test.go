// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ID ───────────────────────────────────────────────────────────────────────

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{"string", `"abc-1"`, "abc-1", false},
		{"number", `42`, "42", false},
		{"null", `null`, "", false},
		{"bool", `true`, "", true},
		{"object", `{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_MarshalJSON_AlwaysString(t *testing.T) {
	b, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.JSONEq(t, `"42"`, string(b))
}

// ── Timestamp ────────────────────────────────────────────────────────────────

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		want     time.Time
		wantZero bool
		wantErr  bool
	}{
		{"rfc3339", `"2024-03-05T14:30:00Z"`, want, false, false},
		{"sql", `"2024-03-05 14:30:00"`, want, false, false},
		{"no zone", `"2024-03-05T14:30:00"`, want, false, false},
		{"null", `null`, time.Time{}, true, false},
		{"empty", `""`, time.Time{}, true, false},
		{"garbage", `"yesterday"`, time.Time{}, false, true},
		{"number", `1700000000`, time.Time{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantZero {
				assert.True(t, ts.IsZero())
				return
			}
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_Display(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local))
	assert.Equal(t, "Jan 2, 2024", ts.Display())
	assert.Equal(t, "", Timestamp{}.Display())
}

// ── CredentialRecord ─────────────────────────────────────────────────────────

func TestCredentialRecord_JSON(t *testing.T) {
	raw := `{"id":5,"title":"Bank","website":"https://bank.example","username":"me",
		"password":"pw","notes":"n","category":"banking",
		"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-02-01T00:00:00Z"}`

	var r CredentialRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, ID("5"), r.ID)
	assert.Equal(t, "pw", r.Secret)
	assert.Equal(t, CategoryBanking, r.Category)
	assert.True(t, r.WasUpdated())

	assert.Equal(t, RecordPayload{
		Title:    "Bank",
		Website:  "https://bank.example",
		Username: "me",
		Secret:   "pw",
		Notes:    "n",
		Category: CategoryBanking,
	}, r.Payload())
}

func TestCredentialRecord_WasUpdated(t *testing.T) {
	created := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, CredentialRecord{CreatedAt: created, UpdatedAt: created}.WasUpdated())
	assert.False(t, CredentialRecord{CreatedAt: created}.WasUpdated())
	assert.True(t, CredentialRecord{
		CreatedAt: created,
		UpdatedAt: NewTimestamp(created.Add(time.Hour)),
	}.WasUpdated())
}

// ── Category ─────────────────────────────────────────────────────────────────

func TestCategory(t *testing.T) {
	assert.True(t, CategoryGaming.IsKnown())
	assert.False(t, Category("travel").IsKnown())
	assert.False(t, CategoryAll.IsKnown())
	assert.False(t, Category("").IsKnown())

	assert.Equal(t, CategoryUncategorized, Category("").Normalize())
	assert.Equal(t, CategoryWork, CategoryWork.Normalize())

	assert.Equal(t, "All Categories", CategoryAll.Label())
	assert.Equal(t, "Uncategorized", Category("").Label())
	assert.Equal(t, "Entertainment", CategoryEntertainment.Label())
	assert.Equal(t, "Élan", Category("élan").Label())
	assert.Equal(t, "Работа", Category("работа").Label())
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StatusUnauthenticated, s.Status())
	_, ok := s.User()
	assert.False(t, ok)

	s.SetChecking()
	assert.Equal(t, StatusChecking, s.Status())
	assert.False(t, s.IsAuthenticated())

	s.Authenticate(User{Username: "alice"})
	assert.True(t, s.IsAuthenticated())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	s.Clear()
	assert.Equal(t, StatusUnauthenticated, s.Status())
	_, ok = s.User()
	assert.False(t, ok)
	assert.Equal(t, "unauthenticated", s.Status().String())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Authenticate(User{Username: "alice"})
			s.Clear()
		}()
		go func() {
			defer wg.Done()
			_, _ = s.User()
			_ = s.IsAuthenticated()
		}()
	}
	wg.Wait()
}

// ── AppBuildInfo ─────────────────────────────────────────────────────────────

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
