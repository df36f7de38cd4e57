package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as read back from the database.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// SolveEventData captures a completed problem solve.
type SolveEventData struct {
	Problem     string
	HasImage    bool
	FinalAnswer string
	StepCount   int
	Model       string
}

// QuizEventData captures a finished quiz attempt.
type QuizEventData struct {
	Topic string
	Total int
	Score int
	Model string
}

// QuizRecord is a stored quiz attempt as read back from the database.
type QuizRecord struct {
	ID        int
	Timestamp time.Time
	QuizEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// TopicStats aggregates quiz results for one topic.
type TopicStats struct {
	Topic     string
	Attempts  int
	AvgScore  float64
	BestScore int
	Total     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendSolve records a completed problem solve.
	AppendSolve(ctx context.Context, data SolveEventData) error

	// CountSolves returns the total number of recorded solves.
	CountSolves(ctx context.Context) (int, error)

	// AppendQuizResult records a finished quiz attempt.
	AppendQuizResult(ctx context.Context, data QuizEventData) error

	// QuizHistory returns quiz attempts, newest first.
	QuizHistory(ctx context.Context, opts QueryOpts) ([]QuizRecord, error)

	// QuizStatsByTopic aggregates quiz results grouped by topic.
	QuizStatsByTopic(ctx context.Context) ([]TopicStats, error)
}
