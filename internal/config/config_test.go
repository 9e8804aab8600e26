package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("REFRESH_TOKEN_TTL", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DYNAMO_TABLE_MEETINGS", "meetings_test")

	cfg := Load()
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "meetings_test", cfg.DynamoTables.Meetings)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "a week")
	assert.Equal(t, 7*24*time.Hour, Load().RefreshTokenTTL)
}

func TestValidate_Secrets(t *testing.T) {
	cases := []struct {
		name    string
		access  string
		refresh string
		wantErr string
	}{
		{"missing access", "", "r", "must be set"},
		{"missing refresh", "a", "", "must be set"},
		{"equal", "same", "same", "must differ"},
		{"ok", "a", "r", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{JWTSecret: tc.access, RefreshSecret: tc.refresh}
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestMeetingLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.MeetingLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.MeetingTimezone = "UTC"
	loc, err = cfg.MeetingLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	cfg.MeetingTimezone = "Not/AZone"
	_, err = cfg.MeetingLocation()
	assert.Error(t, err)
}
