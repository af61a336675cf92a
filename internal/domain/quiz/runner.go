package quiz

import (
	"time"

	"github.com/satpilot/backend/internal/domain/question"
)

// Runner walks an assembled question list one question at a time. It owns the
// session state exclusively: one Runner per session, single caller at a time.
//
// States: NotStarted → InProgress(index) → Completed. The terminal state is
// reached after the last question's Advance, or by Abandon.
type Runner struct {
	questions []question.Question
	index     int
	completed bool

	records   []questionRecord
	correct   int
	incorrect int
	skipped   int

	category   question.Category
	difficulty question.Difficulty

	startedAt       time.Time
	questionStarted time.Time
	result          *SessionResult

	now func() time.Time
}

// questionRecord is the per-question transient state.
type questionRecord struct {
	selected  *int
	submitted bool // true once submitted or skipped
	wasSkip   bool
	elapsed   float64
}

// Feedback describes the outcome of one submitted answer.
type Feedback struct {
	Correct     bool
	AnswerIndex int
	Explanation string
}

// Start begins a session over the given questions. The category and
// difficulty tags are carried through to the session result unchanged.
func Start(questions []question.Question, category question.Category, difficulty question.Difficulty) (*Runner, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}

	qs := make([]question.Question, len(questions))
	copy(qs, questions)

	r := &Runner{
		questions:  qs,
		records:    make([]questionRecord, len(qs)),
		category:   category,
		difficulty: difficulty,
		now:        time.Now,
	}
	r.startedAt = r.now()
	r.questionStarted = r.startedAt
	return r, nil
}

// CurrentQuestion returns the question at the current index.
func (r *Runner) CurrentQuestion() (question.Question, error) {
	if r.completed {
		return question.Question{}, ErrSessionComplete
	}
	return r.questions[r.index], nil
}

// Progress reports the current 0-based index and the total question count.
func (r *Runner) Progress() (index, total int) {
	return r.index, len(r.questions)
}

// Completed reports whether the session reached its terminal state.
func (r *Runner) Completed() bool {
	return r.completed
}

// SelectAnswer records a choice for the current question. Selection is
// mutable until submission: a later call overwrites the earlier one.
func (r *Runner) SelectAnswer(choice int) error {
	if r.completed {
		return ErrSessionComplete
	}
	rec := &r.records[r.index]
	if rec.submitted {
		return ErrAlreadySubmitted
	}
	if choice < 0 || choice >= len(r.questions[r.index].Options) {
		return ErrInvalidChoice
	}
	rec.selected = &choice
	return nil
}

// SubmitAnswer locks in the current selection, scores it, and records the
// elapsed time since the question became current. A second submit without an
// intervening Advance fails and leaves the tallies untouched.
func (r *Runner) SubmitAnswer() (Feedback, error) {
	if r.completed {
		return Feedback{}, ErrSessionComplete
	}
	rec := &r.records[r.index]
	if rec.submitted {
		return Feedback{}, ErrAlreadySubmitted
	}
	if rec.selected == nil {
		return Feedback{}, ErrNoSelection
	}

	q := r.questions[r.index]
	rec.submitted = true
	rec.elapsed = r.now().Sub(r.questionStarted).Seconds()

	correct := *rec.selected == q.AnswerIndex
	if correct {
		r.correct++
	} else {
		r.incorrect++
	}

	return Feedback{
		Correct:     correct,
		AnswerIndex: q.AnswerIndex,
		Explanation: q.Explanation,
	}, nil
}

// Skip marks the current question skipped without a selection.
func (r *Runner) Skip() error {
	if r.completed {
		return ErrSessionComplete
	}
	rec := &r.records[r.index]
	if rec.submitted {
		return ErrAlreadySubmitted
	}
	rec.submitted = true
	rec.wasSkip = true
	rec.elapsed = r.now().Sub(r.questionStarted).Seconds()
	r.skipped++
	return nil
}

// Advance moves to the next question, or completes the session after the
// last one. Valid only once the current question was submitted or skipped.
// It returns true when the session just completed.
func (r *Runner) Advance() (done bool, err error) {
	if r.completed {
		return false, ErrSessionComplete
	}
	if !r.records[r.index].submitted {
		return false, ErrQuestionPending
	}

	if r.index+1 < len(r.questions) {
		r.index++
		r.questionStarted = r.now()
		return false, nil
	}

	r.finish(false)
	return true, nil
}

// Abandon terminates the session early. Remaining unanswered questions,
// including an unresolved current one, count as skipped so the tallies always
// sum to the full question count.
func (r *Runner) Abandon() (*SessionResult, error) {
	if r.completed {
		return nil, ErrSessionComplete
	}

	for i := r.index; i < len(r.questions); i++ {
		if !r.records[i].submitted {
			r.records[i].submitted = true
			r.records[i].wasSkip = true
			r.skipped++
		}
	}
	r.finish(true)
	return r.result, nil
}

// Result returns the materialized session result. Valid only in the
// Completed state.
func (r *Runner) Result() (*SessionResult, error) {
	if !r.completed {
		return nil, ErrSessionNotComplete
	}
	return r.result, nil
}

func (r *Runner) finish(abandoned bool) {
	perQuestion := make([]float64, len(r.records))
	var missed []string
	for i, rec := range r.records {
		perQuestion[i] = rec.elapsed
		if rec.submitted && !rec.wasSkip && rec.selected != nil &&
			*rec.selected != r.questions[i].AnswerIndex {
			missed = append(missed, r.questions[i].ID)
		}
	}

	now := r.now()
	r.completed = true
	r.result = &SessionResult{
		Correct:           r.correct,
		Incorrect:         r.incorrect,
		Skipped:           r.skipped,
		TotalQuestions:    len(r.questions),
		TotalSeconds:      now.Sub(r.startedAt).Seconds(),
		QuestionSeconds:   perQuestion,
		Category:          r.category,
		Difficulty:        r.difficulty,
		MissedQuestionIDs: missed,
		CompletedAt:       now,
		Abandoned:         abandoned,
	}
}
