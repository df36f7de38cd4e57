package quiz

// Question is a single multiple-choice quiz question. Question text,
// options and explanation may embed $...$ math spans.
type Question struct {
	ID            string
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// HasValidAnswer reports whether CorrectAnswer matches one of Options by
// exact string equality. Generated questions failing this check can never
// be answered correctly and are filtered out at ingestion.
func (q Question) HasValidAnswer() bool {
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}
