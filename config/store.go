package config

import (
	"log"

	"github.com/quasilyte/gdata"
)

const tuningItem = "tuning"

// Store keeps per-user tuning overrides in the platform's app data directory.
type Store struct {
	manager *gdata.Manager
}

// OpenStore opens the data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &Store{manager: m}, nil
}

// Load returns the saved tuning, or nil when nothing was saved yet.
func (s *Store) Load() (*Config, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}

	data, err := s.manager.LoadItem(tuningItem)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	c, err := Parse(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return c, nil
}

// Save writes c as the user's tuning.
func (s *Store) Save(c *Config) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := c.Marshal()
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}
	if err := s.manager.SaveItem(tuningItem, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// Clear removes the saved tuning. Clearing when nothing was saved is not an
// error.
func (s *Store) Clear() error {
	if s == nil || s.manager == nil {
		return nil
	}
	if err := s.manager.DeleteItem(tuningItem); err != nil {
		log.Printf("Warning: Could not clear tuning: %v", err)
		return err
	}
	return nil
}

// Saved reports whether a tuning item exists.
func (s *Store) Saved() bool {
	return s != nil && s.manager != nil && s.manager.ItemExists(tuningItem)
}

// Select prefers the file at path, then the saved tuning, then the defaults.
// A saved tuning that no longer parses falls back to the defaults.
func (s *Store) Select(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if saved, err := s.Load(); err == nil && saved != nil {
		log.Printf("Using saved tuning")
		return saved, nil
	}
	return NewDefault(), nil
}
