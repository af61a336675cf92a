package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS performance_records (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    correct INTEGER NOT NULL,
    incorrect INTEGER NOT NULL,
    skipped INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    total_seconds REAL NOT NULL,
    question_seconds TEXT NOT NULL,
    missed_question_ids TEXT NOT NULL,
    abandoned BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at TIMESTAMP NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS generated_questions (
    id TEXT PRIMARY KEY,
    prompt TEXT NOT NULL,
    options TEXT NOT NULL,
    answer_index INTEGER NOT NULL,
    explanation TEXT NOT NULL,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    source_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);
`

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Performance records
// ============================================================================

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec quiz.PerformanceRecord) error {
	secondsJSON, _ := json.Marshal(rec.Result.QuestionSeconds)
	missedJSON, _ := json.Marshal(rec.Result.MissedQuestionIDs)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO performance_records
		(id, category, difficulty, correct, incorrect, skipped, total_questions,
		 total_seconds, question_seconds, missed_question_ids, abandoned,
		 completed_at, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Result.Category), string(rec.Result.Difficulty),
		rec.Result.Correct, rec.Result.Incorrect, rec.Result.Skipped,
		rec.Result.TotalQuestions, rec.Result.TotalSeconds,
		string(secondsJSON), string(missedJSON), rec.Result.Abandoned,
		rec.Result.CompletedAt, rec.RecordedAt,
	)
	return err
}

func (s *SQLiteStore) GetRecord(ctx context.Context, id string) (quiz.PerformanceRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, category, difficulty, correct, incorrect, skipped,
		       total_questions, total_seconds, question_seconds,
		       missed_question_ids, abandoned, completed_at, recorded_at
		FROM performance_records WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return quiz.PerformanceRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *SQLiteStore) ListRecords(ctx context.Context) ([]quiz.PerformanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, difficulty, correct, incorrect, skipped,
		       total_questions, total_seconds, question_seconds,
		       missed_question_ids, abandoned, completed_at, recorded_at
		FROM performance_records ORDER BY recorded_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []quiz.PerformanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (quiz.PerformanceRecord, error) {
	var (
		rec                     quiz.PerformanceRecord
		category, difficulty    string
		secondsJSON, missedJSON string
	)
	err := sc.Scan(
		&rec.ID, &category, &difficulty,
		&rec.Result.Correct, &rec.Result.Incorrect, &rec.Result.Skipped,
		&rec.Result.TotalQuestions, &rec.Result.TotalSeconds,
		&secondsJSON, &missedJSON, &rec.Result.Abandoned,
		&rec.Result.CompletedAt, &rec.RecordedAt,
	)
	if err != nil {
		return quiz.PerformanceRecord{}, err
	}

	rec.Result.Category = question.Category(category)
	rec.Result.Difficulty = question.Difficulty(difficulty)
	json.Unmarshal([]byte(secondsJSON), &rec.Result.QuestionSeconds)
	json.Unmarshal([]byte(missedJSON), &rec.Result.MissedQuestionIDs)
	return rec, nil
}

// ============================================================================
// Generated-question pool
// ============================================================================

func (s *SQLiteStore) SaveGenerated(ctx context.Context, questions []question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range questions {
		optionsJSON, _ := json.Marshal(q.Options)
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO generated_questions
			(id, prompt, options, answer_index, explanation, category, difficulty, source_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.Prompt, string(optionsJSON), q.AnswerIndex, q.Explanation,
			string(q.Category), string(q.Difficulty), q.SourceURL, q.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadGenerated(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, prompt, options, answer_index, explanation, category, difficulty, source_url, created_at
		FROM generated_questions ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		var (
			q                    question.Question
			optionsJSON          string
			category, difficulty string
			createdAt            time.Time
		)
		if err := rows.Scan(&q.ID, &q.Prompt, &optionsJSON, &q.AnswerIndex,
			&q.Explanation, &category, &difficulty, &q.SourceURL, &createdAt); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(optionsJSON), &q.Options)
		q.Category = question.Category(category)
		q.Difficulty = question.Difficulty(difficulty)
		q.CreatedAt = createdAt
		q.Generated = true
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) ClearGenerated(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM generated_questions")
	return err
}
