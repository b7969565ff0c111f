package config

import (
	"testing"
	"time"
)

func TestGetEnv_Fallback(t *testing.T) {
	if got := GetEnv("AIMTRAINER_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want %q", got, "fallback")
	}
}

func TestGetEnv_SetEmpty(t *testing.T) {
	t.Setenv("SSH_HOST", "")

	// An explicitly empty variable is still "set".
	if got := GetEnv("SSH_HOST", "::"); got != "" {
		t.Errorf("GetEnv() = %q, want empty string", got)
	}
}

func TestGetEnv_Value(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")

	if got := GetEnv("SSH_PORT", "2222"); got != "2323" {
		t.Errorf("GetEnv() = %q, want %q", got, "2323")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MAX_SESSIONS", "12")
	if got := GetEnvInt("MAX_SESSIONS", 64); got != 12 {
		t.Errorf("GetEnvInt() = %d, want %d", got, 12)
	}

	t.Setenv("MAX_SESSIONS", "abc")
	if got := GetEnvInt("MAX_SESSIONS", 64); got != 64 {
		t.Errorf("GetEnvInt() = %d, want %d (fallback)", got, 64)
	}

	t.Setenv("MAX_SESSIONS", "")
	if got := GetEnvInt("MAX_SESSIONS", 64); got != 64 {
		t.Errorf("GetEnvInt() = %d, want %d (fallback)", got, 64)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SSH_IDLE_TIMEOUT", "90s")
	if got := GetEnvDuration("SSH_IDLE_TIMEOUT", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want %v", got, 90*time.Second)
	}

	t.Setenv("SSH_IDLE_TIMEOUT", "ninety")
	if got := GetEnvDuration("SSH_IDLE_TIMEOUT", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration() = %v, want %v (fallback)", got, time.Minute)
	}
}
