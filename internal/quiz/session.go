package quiz

import "errors"

// Phase is the coarse lifecycle state of a quiz attempt.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

var (
	// ErrBusy is returned when a generation request is already in flight.
	ErrBusy = errors.New("quiz generation already in progress")

	// ErrActive is returned when starting over an unfinished attempt.
	ErrActive = errors.New("quiz attempt still active")

	// ErrEmptyQuiz is returned when generation produced no usable questions.
	ErrEmptyQuiz = errors.New("quiz generation returned no questions")
)

// Session owns the lifecycle of a single quiz attempt. All transitions
// happen on the UI event loop; the request token keeps a superseded
// generation response from being applied after a newer Begin.
type Session struct {
	topic     string
	questions []Question
	current   int
	selected  string
	answered  bool
	revealed  bool
	score     int
	phase     Phase

	// prevPhase is restored when an in-flight generation fails.
	prevPhase Phase

	// token identifies the latest generation request. Monotonic.
	token uint64
}

// NewSession creates an idle session with the given default topic.
func NewSession(topic string) *Session {
	return &Session{topic: topic, phase: PhaseIdle}
}

// Topic returns the current topic.
func (s *Session) Topic() string { return s.topic }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// Len returns the number of questions in the fetched set.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.current }

// CurrentQuestion returns the active question, or nil outside PhaseActive.
func (s *Session) CurrentQuestion() *Question {
	if s.phase != PhaseActive {
		return nil
	}
	return &s.questions[s.current]
}

// Selected returns the chosen option for the current question and whether
// one has been chosen at all.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.answered
}

// Revealed reports whether correctness and explanation are visible for
// the current question.
func (s *Session) Revealed() bool { return s.revealed }

// SelectTopic replaces the pending topic. Allowed only before a quiz is
// loading or active.
func (s *Session) SelectTopic(name string) error {
	switch s.phase {
	case PhaseLoading:
		return ErrBusy
	case PhaseActive:
		return ErrActive
	}
	s.topic = name
	return nil
}

// Begin transitions Idle or Finished into Loading and returns the request
// token the eventual Apply or Fail call must present. The previous question
// set stays intact until a successful Apply so a failed fetch corrupts
// nothing.
func (s *Session) Begin() (uint64, error) {
	switch s.phase {
	case PhaseLoading:
		return 0, ErrBusy
	case PhaseActive:
		return 0, ErrActive
	}
	s.prevPhase = s.phase
	s.phase = PhaseLoading
	s.token++
	return s.token, nil
}

// Restart begins a fresh attempt with the last-used topic. Valid exactly
// where Begin is.
func (s *Session) Restart() (uint64, error) {
	return s.Begin()
}

// Apply installs a fetched question set. A stale token (superseded by a
// newer Begin) is discarded without touching state; the returned bool
// reports whether the message was consumed, so callers can skip their own
// state updates for discarded responses. An empty set restores the
// pre-call phase and returns ErrEmptyQuiz.
func (s *Session) Apply(token uint64, questions []Question) (bool, error) {
	if token != s.token || s.phase != PhaseLoading {
		return false, nil
	}
	if len(questions) == 0 {
		s.phase = s.prevPhase
		return true, ErrEmptyQuiz
	}
	s.questions = questions
	s.current = 0
	s.score = 0
	s.selected = ""
	s.answered = false
	s.revealed = false
	s.phase = PhaseActive
	return true, nil
}

// Fail aborts an in-flight generation, restoring the pre-call phase.
// Stale tokens are discarded; the returned bool reports whether the
// failure was consumed.
func (s *Session) Fail(token uint64) bool {
	if token != s.token || s.phase != PhaseLoading {
		return false
	}
	s.phase = s.prevPhase
	return true
}

// Answer records the chosen option for the current question. The first
// answer is final: repeat calls are no-ops. Score increments exactly once,
// at selection time, iff the option equals the correct answer by exact
// string comparison. Returns whether the answer was registered.
func (s *Session) Answer(option string) bool {
	if s.phase != PhaseActive || s.answered {
		return false
	}
	s.selected = option
	s.answered = true
	s.revealed = true
	if option == s.questions[s.current].CorrectAnswer {
		s.score++
	}
	return true
}

// AnsweredCorrectly reports whether the registered answer for the current
// question was correct.
func (s *Session) AnsweredCorrectly() bool {
	return s.answered && s.selected == s.questions[s.current].CorrectAnswer
}

// Advance moves to the next question, resetting the selection and reveal
// state, or transitions to Finished after the last question. Valid only
// while the current question's answer is revealed.
func (s *Session) Advance() {
	if s.phase != PhaseActive || !s.revealed {
		return
	}
	if s.current+1 < len(s.questions) {
		s.current++
		s.selected = ""
		s.answered = false
		s.revealed = false
		return
	}
	s.phase = PhaseFinished
}
