package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/satpilot/backend/internal/domain/question"
)

// questionYAML is the on-disk shape of one catalog question.
type questionYAML struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	AnswerIndex int      `yaml:"answer_index"`
	Explanation string   `yaml:"explanation"`
	Category    string   `yaml:"category"`
	Difficulty  string   `yaml:"difficulty"`
	SourceURL   string   `yaml:"source_url"`
	PassageID   string   `yaml:"passage_id"`
}

type passageYAML struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Body        string   `yaml:"body"`
	SourceURL   string   `yaml:"source_url"`
	QuestionIDs []string `yaml:"question_ids"`
}

type fileYAML struct {
	Questions []questionYAML `yaml:"questions"`
	Passages  []passageYAML  `yaml:"passages"`
}

// Catalog is the static question set loaded at startup.
type Catalog struct {
	Questions []question.Question
	Passages  []question.Passage
}

// LoadDir reads every .yaml/.yml file in dir and merges their questions and
// passages. Malformed entries fail the load: the catalog ships with the
// deployment, so a bad file is an operator error, not a runtime condition.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	cat := &Catalog{}
	seen := make(map[string]string) // question ID → file

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var file fileYAML
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for i, qy := range file.Questions {
			q, err := convertQuestion(qy)
			if err != nil {
				return nil, fmt.Errorf("%s: question %d (%s): %w", path, i, qy.ID, err)
			}
			if prev, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate question ID %q (first seen in %s)", path, q.ID, prev)
			}
			seen[q.ID] = path
			cat.Questions = append(cat.Questions, q)
		}

		for _, py := range file.Passages {
			if py.ID == "" {
				return nil, fmt.Errorf("%s: passage with empty ID", path)
			}
			cat.Passages = append(cat.Passages, question.Passage{
				ID:          py.ID,
				Title:       py.Title,
				Body:        py.Body,
				SourceURL:   py.SourceURL,
				QuestionIDs: py.QuestionIDs,
			})
		}
	}

	return cat, nil
}

func convertQuestion(qy questionYAML) (question.Question, error) {
	if qy.ID == "" {
		return question.Question{}, fmt.Errorf("empty question ID")
	}

	cat := question.Category(qy.Category)
	if !cat.Valid() {
		return question.Question{}, fmt.Errorf("unknown category %q", qy.Category)
	}

	diff := question.Difficulty(qy.Difficulty)
	if !diff.Valid() {
		return question.Question{}, fmt.Errorf("unknown difficulty %q", qy.Difficulty)
	}

	q := question.Question{
		ID:          qy.ID,
		Prompt:      qy.Prompt,
		Options:     qy.Options,
		AnswerIndex: qy.AnswerIndex,
		Explanation: qy.Explanation,
		Category:    cat,
		Difficulty:  diff,
		CreatedAt:   time.Now(),
		SourceURL:   qy.SourceURL,
		PassageID:   qy.PassageID,
	}
	if err := q.Validate(); err != nil {
		return question.Question{}, err
	}
	return q, nil
}
