package reporter

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type sentEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// SentCache remembers which reminders were already delivered so repeated
// runs do not re-notify. Entries expire after 90 days to keep the file
// from growing forever.
type SentCache struct {
	mu       sync.Mutex
	filePath string
	sent     map[string]int64
}

const ninetyDaysMs = int64(90 * 24 * 60 * 60 * 1000)

// NewSentCache creates or loads the reminder cache under cacheDir.
func NewSentCache(cacheDir string) *SentCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &SentCache{
		filePath: filepath.Join(cacheDir, "sent_reminders.json"),
		sent:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSent checks if a reminder key has already been delivered.
func (sc *SentCache) IsSent(key string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	_, exists := sc.sent[key]
	return exists
}

func (sc *SentCache) Add(keys []string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, key := range keys {
		if _, exists := sc.sent[key]; !exists {
			sc.sent[key] = now
			changed = true
		}
	}

	if changed {
		sc.save()
	}
}

func (sc *SentCache) load() {
	data, err := os.ReadFile(sc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read sent_reminders.json: %v", err)
		}
		return
	}

	var entries []sentEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse sent_reminders.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - ninetyDaysMs
	for _, e := range entries {
		if e.Timestamp > cutoff {
			sc.sent[e.Key] = e.Timestamp
		}
	}
}

func (sc *SentCache) save() {
	entries := make([]sentEntry, 0, len(sc.sent))
	for key, ts := range sc.sent {
		entries = append(entries, sentEntry{Key: key, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal sent reminders: %v", err)
		return
	}
	if err := os.WriteFile(sc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write sent_reminders.json: %v", err)
	}
}
