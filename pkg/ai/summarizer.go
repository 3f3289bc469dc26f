package ai

import (
	"context"
	"fmt"
	"time"
)

// ActionItem is a follow-up item produced by summarization
type ActionItem struct {
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
}

// SummaryResult is the output of the summarization capability
type SummaryResult struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
}

// Summarizer turns a meeting transcript into a summary plus action
// items. The production implementation is an external service; the
// mock is the default.
type Summarizer interface {
	Summarize(ctx context.Context, meetingTitle, transcript string) (*SummaryResult, error)
}

// MockSummarizer produces a fixed-format summary referencing the
// meeting title and exactly two action items due +7 and +14 days from
// now.
type MockSummarizer struct {
	now func() time.Time
}

// NewMockSummarizer creates a mock summarizer
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{now: time.Now}
}

// NewMockSummarizerWithClock creates a mock summarizer with a fixed clock
func NewMockSummarizerWithClock(now func() time.Time) *MockSummarizer {
	return &MockSummarizer{now: now}
}

// Summarize generates the canned summary and action items
func (s *MockSummarizer) Summarize(ctx context.Context, meetingTitle, transcript string) (*SummaryResult, error) {
	now := s.now()
	return &SummaryResult{
		Summary: fmt.Sprintf("Summary for meeting %q", meetingTitle),
		ActionItems: []ActionItem{
			{Title: "Action Item 1", DueDate: now.Add(7 * 24 * time.Hour)},
			{Title: "Action Item 2", DueDate: now.Add(14 * 24 * time.Hour)},
		},
	}, nil
}
