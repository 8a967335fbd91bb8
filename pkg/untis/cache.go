package untis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long fetched day entries are kept before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Entries   []Entry   `json:"entries"`
}

func getCachePath(school string, day time.Time) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".berichtctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// e.g. "gym-musterstadt_2026-03-04.json"
	name := fmt.Sprintf("%s_%s.json", school, day.Format("2006-01-02"))
	return filepath.Join(cacheDir, name), nil
}

// readCache checks if a valid, unexpired cache exists for this school and day
func readCache(school string, day time.Time) ([]Entry, bool) {
	path, err := getCachePath(school, day)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	// Check expiration
	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false // Expired
	}

	return entry.Entries, true
}

// writeCache saves the fetched day to disk
func writeCache(school string, day time.Time, entries []Entry) {
	path, err := getCachePath(school, day)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Entries:   entries,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
