package conversation

import (
	"sync"
	"time"

	"github.com/promptline/relay/pkg/llm"
)

// Transcript is the ordered, append-only message history for one session.
// Handlers share transcript pointers across requests, so all access goes
// through the mutex
type Transcript struct {
	mu        sync.RWMutex
	sessionID string
	createdAt time.Time
	updatedAt time.Time
	messages  []llm.Message
}

// newTranscript creates an empty transcript for a session
func newTranscript(sessionID string) *Transcript {
	now := time.Now().UTC()
	return &Transcript{
		sessionID: sessionID,
		createdAt: now,
		updatedAt: now,
		messages:  []llm.Message{},
	}
}

// SessionID returns the owning session id
func (t *Transcript) SessionID() string {
	return t.sessionID
}

// CreatedAt returns when the transcript was created
func (t *Transcript) CreatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.createdAt
}

// UpdatedAt returns when the transcript was last appended to
func (t *Transcript) UpdatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.updatedAt
}

// Append adds a message at the end of the transcript
func (t *Transcript) Append(role llm.Role, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages = append(t.messages, llm.Message{Role: role, Content: content})
	t.updatedAt = time.Now().UTC()
}

// Messages returns a copy of the transcript in conversation order
func (t *Transcript) Messages() []llm.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]llm.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages in the transcript
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Last returns the most recent message, or false if the transcript is empty
func (t *Transcript) Last() (llm.Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.messages) == 0 {
		return llm.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
