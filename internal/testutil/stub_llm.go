package testutil

import (
	"context"
	"sync"

	"github.com/promptline/relay/pkg/llm"
)

// StubLLM implements llm.Client for tests, recording requests and
// replying with a canned response
type StubLLM struct {
	mu       sync.Mutex
	requests []llm.Request

	Response llm.Response
	Err      error
}

// NewStubLLM creates a stub that replies with the given content
func NewStubLLM(content string) *StubLLM {
	return &StubLLM{
		Response: llm.Response{
			Content:     content,
			Model:       "stub-model",
			TotalTokens: 10,
		},
	}
}

// Complete records the request and returns the canned response
func (s *StubLLM) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if s.Err != nil {
		return nil, s.Err
	}

	resp := s.Response
	return &resp, nil
}

// Requests returns a copy of all recorded requests
func (s *StubLLM) Requests() []llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]llm.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false if none were made
func (s *StubLLM) LastRequest() (llm.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return llm.Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}
