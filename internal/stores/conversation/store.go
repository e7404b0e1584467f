package conversation

import (
	"sort"
	"sync"
	"time"

	"github.com/promptline/relay/pkg/llm"
)

// Store maps session ids to transcripts, creating them lazily on first
// use. Transcripts live for the process lifetime unless explicitly
// evicted; there is no TTL. A single mutex guards the map so that
// concurrent first-time lookups for the same id construct exactly one
// transcript
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Transcript
}

// SessionInfo is a summary of one stored session
type SessionInfo struct {
	SessionID    string    `json:"session_id"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewStore creates an empty conversation store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Transcript),
	}
}

// GetOrCreate returns the transcript for a session id, creating an empty
// one on first use. Any string is a valid id, including the empty string
func (s *Store) GetOrCreate(sessionID string) *Transcript {
	// Fast path for existing sessions
	s.mu.RLock()
	transcript, exists := s.sessions[sessionID]
	s.mu.RUnlock()
	if exists {
		return transcript
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock; another handler may have created it
	if transcript, exists := s.sessions[sessionID]; exists {
		return transcript
	}

	transcript = newTranscript(sessionID)
	s.sessions[sessionID] = transcript
	return transcript
}

// Get returns the transcript for a session id without creating one
func (s *Store) Get(sessionID string) (*Transcript, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transcript, exists := s.sessions[sessionID]
	return transcript, exists
}

// Append fetches (or creates) the transcript and appends a message
func (s *Store) Append(sessionID string, role llm.Role, content string) {
	s.GetOrCreate(sessionID).Append(role, content)
}

// Len returns the number of stored sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sessions returns summaries of all stored sessions, most recently
// updated first
func (s *Store) Sessions() []SessionInfo {
	s.mu.RLock()
	infos := make([]SessionInfo, 0, len(s.sessions))
	for id, transcript := range s.sessions {
		infos = append(infos, SessionInfo{
			SessionID:    id,
			MessageCount: transcript.Len(),
			CreatedAt:    transcript.CreatedAt(),
			UpdatedAt:    transcript.UpdatedAt(),
		})
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})

	return infos
}

// Evict removes a session and its transcript from the store.
// Returns false if the session did not exist
func (s *Store) Evict(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sessionID]; !exists {
		return false
	}

	delete(s.sessions, sessionID)
	return true
}

// EvictIdle removes all sessions whose last update is older than the
// cutoff and returns the evicted session ids
func (s *Store) EvictIdle(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []string
	for id, transcript := range s.sessions {
		if transcript.UpdatedAt().Before(cutoff) {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}

	return evicted
}
