package configs

import (
	"testing"
	"time"
)

var testEnv = map[string]string{
	"APP_DEBUG":          "false",
	"APP_ENV":            "test",
	"APP_PORT":           "8080",
	"NUXEO_URL":          "http://localhost:8080/nuxeo/",
	"NUXEO_USER":         "",
	"NUXEO_PASSWORD":     "",
	"NUXEO_TIMEOUT":      "30",
	"DEBUG_USER":         "demo",
	"DEBUG_PASSWORD":     "secret",
	"CMIS_ENABLED":       "false",
	"CMIS_URL":           "http://localhost:8080/nuxeo/json/cmis",
	"CMIS_REPOSITORY_ID": "default",
	"CMIS_BINDING_TYPE":  "browser",
	"POSTGRES_HOST":      "",
	"POSTGRES_PORT":      "5432",
	// zero signals the application layer to apply its defaults
	"SESSION_IDLE_TIMEOUT":   "0",
	"SESSION_CHECK_INTERVAL": "0",
}

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv(t *testing.T) {
	t.Helper()
	for key, value := range testEnv {
		t.Setenv(key, value)
	}
}

// TestSessionStructFieldsUnmarshal tests that Session struct fields are properly unmarshaled from config
func TestSessionStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("SESSION_IDLE_TIMEOUT", "45")
	t.Setenv("SESSION_CHECK_INTERVAL", "3")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Session.IdleTimeout != 45 {
		t.Errorf("Expected Session.IdleTimeout to be 45, got %d", cfg.Session.IdleTimeout)
	}
	if cfg.Session.CheckInterval != 3 {
		t.Errorf("Expected Session.CheckInterval to be 3, got %d", cfg.Session.CheckInterval)
	}
	if cfg.Session.IdleTimeoutDuration() != 45*time.Second {
		t.Errorf("Expected idle timeout duration 45s, got %v", cfg.Session.IdleTimeoutDuration())
	}
	if cfg.Session.CheckIntervalDuration() != 3*time.Second {
		t.Errorf("Expected check interval duration 3s, got %v", cfg.Session.CheckIntervalDuration())
	}
}

// TestSessionZeroValuesRequireApplicationDefaults tests that zero values pass through unchanged;
// the session manager applies its own defaults.
func TestSessionZeroValuesRequireApplicationDefaults(t *testing.T) {
	setupTestEnv(t)

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Session.IdleTimeout != 0 {
		t.Errorf("Expected Session.IdleTimeout to be 0, got %d", cfg.Session.IdleTimeout)
	}
	if cfg.Session.CheckInterval != 0 {
		t.Errorf("Expected Session.CheckInterval to be 0, got %d", cfg.Session.CheckInterval)
	}
}

// TestNuxeoCredentialsFallBackToDebug tests that the debug pair is used when no binding user is set
func TestNuxeoCredentialsFallBackToDebug(t *testing.T) {
	setupTestEnv(t)

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Nuxeo.URL != "http://localhost:8080/nuxeo/" {
		t.Errorf("Expected Nuxeo.URL from env, got %s", cfg.Nuxeo.URL)
	}

	user, password := cfg.Nuxeo.Credentials(cfg.Debug)
	if user != "demo" || password != "secret" {
		t.Errorf("Expected debug credentials demo/secret, got %s/%s", user, password)
	}
}

// TestCMISCredentialsPreferBindingUser tests that binding credentials win over the debug pair
func TestCMISCredentialsPreferBindingUser(t *testing.T) {
	cmis := CMIS{User: "cmis-user", Password: "cmis-pass"}

	user, password := cmis.Credentials(Debug{User: "demo", Password: "secret"})
	if user != "cmis-user" || password != "cmis-pass" {
		t.Errorf("Expected cmis-user/cmis-pass, got %s/%s", user, password)
	}
}
