package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"tagmore/log"
)

const StateFileName = "state.json"

// MaxRecentFiles caps the recent file list.
const MaxRecentFiles = 10

// State is the application state that persists between runs.
type State struct {
	// RecentFiles lists tag files opened in the TUI, most recent first.
	RecentFiles []string `json:"recent_files"`
	// HelpSeen is set once the help popover has been shown.
	HelpSeen bool `json:"help_seen"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{RecentFiles: []string{}}
}

func statePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, StateFileName), nil
}

// LoadState loads the state from disk under a shared lock. On any failure the
// default state is returned.
func LoadState() *State {
	path, err := statePath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.WarningLog.Printf("failed to create config directory: %v", err)
		return DefaultState()
	}

	lock := NewFileLock(path)
	if err := lock.RLock(); err != nil {
		// Stale data beats no data.
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return DefaultState()
	}

	state := DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}
	return state
}

// SaveState writes the state to disk under an exclusive lock.
func SaveState(state *State) error {
	path, err := statePath()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// AddRecentFile moves path to the front of the recent list and saves the state.
func (s *State) AddRecentFile(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	s.RecentFiles = slices.DeleteFunc(s.RecentFiles, func(p string) bool { return p == path })
	s.RecentFiles = append([]string{path}, s.RecentFiles...)
	if len(s.RecentFiles) > MaxRecentFiles {
		s.RecentFiles = s.RecentFiles[:MaxRecentFiles]
	}
	return SaveState(s)
}

// MarkHelpSeen records that the help popover was shown and saves the state.
func (s *State) MarkHelpSeen() error {
	if s.HelpSeen {
		return nil
	}
	s.HelpSeen = true
	return SaveState(s)
}
