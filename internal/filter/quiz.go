package filter

// QuizAnswer is one answered quiz question: the category key the question
// targets and the values the user selected.
type QuizAnswer struct {
	Key    string   `json:"key" validate:"required"`
	Values []string `json:"values"`
}

// QuizSession folds quiz answers into filter criteria. Multiple questions may
// target the same category key; answering a key again overwrites its earlier
// values (a user can revisit a question before seeing results), never merges.
type QuizSession struct {
	answers map[string][]string
	order   []string
}

// NewQuizSession creates an empty quiz session.
func NewQuizSession() *QuizSession {
	return &QuizSession{answers: map[string][]string{}}
}

// Answer records the selected values for a category key, last write wins.
func (q *QuizSession) Answer(key string, values []string) {
	if _, seen := q.answers[key]; !seen {
		q.order = append(q.order, key)
	}
	q.answers[key] = append([]string(nil), values...)
}

// Criteria returns the accumulated answers as match criteria.
func (q *QuizSession) Criteria() Criteria {
	categories := make(map[string][]string, len(q.answers))
	for key, values := range q.answers {
		categories[key] = append([]string(nil), values...)
	}
	return Criteria{Categories: categories}
}

// Compose folds an ordered answer list into criteria, preserving the
// last-write-wins rule for repeated keys.
func Compose(answers []QuizAnswer) Criteria {
	session := NewQuizSession()
	for _, a := range answers {
		session.Answer(a.Key, a.Values)
	}
	return session.Criteria()
}
