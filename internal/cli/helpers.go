package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tripwizard/internal/logging"
	"github.com/google/uuid"
)

// sessionFile holds the current session ID inside the data dir.
const sessionFile = "session"

// NewLogger configures the application logger from a level name.
// "off" disables logging.
func NewLogger(level string) (*slog.Logger, error) {
	if strings.EqualFold(level, "off") {
		return logging.NewNop(), nil
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(l), nil
}

// ResolveSessionID returns configured when set. Otherwise it reuses the ID
// saved in dataDir, creating and saving a new one on first use.
func ResolveSessionID(dataDir, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	path := filepath.Join(dataDir, sessionFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read session id: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to save session id: %w", err)
	}
	return id, nil
}

// ForgetSessionID removes the saved session ID so the next run starts a new session.
func ForgetSessionID(dataDir string) error {
	err := os.Remove(filepath.Join(dataDir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
