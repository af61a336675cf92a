package catalog

import (
	"time"

	"github.com/satpilot/backend/internal/domain/question"
)

// Builtin returns the bundled starter catalog, used when no catalog
// directory is configured. One question per category keeps a fresh install
// usable; real deployments point CATALOG_DIR at a fuller set.
func Builtin() *Catalog {
	now := time.Now()
	q := func(id, prompt string, options []string, answer int, explanation string, cat question.Category, diff question.Difficulty) question.Question {
		return question.Question{
			ID:          id,
			Prompt:      prompt,
			Options:     options,
			AnswerIndex: answer,
			Explanation: explanation,
			Category:    cat,
			Difficulty:  diff,
			CreatedAt:   now,
		}
	}

	cat := &Catalog{
		Questions: []question.Question{
			q("alg-001",
				"If 2x - 7 = 13, what is the value of x?",
				[]string{"3", "6", "10", "20"},
				2,
				"Add 7 to both sides to get 2x = 20, then divide by 2.",
				question.CategoryAlgebra, question.DifficultyEasy),
			q("alg-002",
				"If y = 3x and x + y = 24, what is the value of x?",
				[]string{"4", "6", "8", "18"},
				1,
				"Substitute y = 3x into x + y = 24 to get 4x = 24, so x = 6.",
				question.CategoryAlgebra, question.DifficultyMedium),
			q("geo-001",
				"A circle has a radius of 5. What is its circumference?",
				[]string{"5π", "10π", "25π", "50π"},
				1,
				"Circumference is 2πr = 2π × 5 = 10π.",
				question.CategoryGeometry, question.DifficultyEasy),
			q("adv-001",
				"For f(x) = x² + 2x, what is f(3)?",
				[]string{"9", "11", "15", "21"},
				2,
				"f(3) = 3² + 2 × 3 = 9 + 6 = 15.",
				question.CategoryAdvancedMath, question.DifficultyMedium),
			q("dat-001",
				"A class of 20 students averaged 80 on a test. If one score of 100 is removed, what is the new average?",
				[]string{"78", "78.9", "79", "80"},
				1,
				"The total is 1600; removing 100 leaves 1500 across 19 students, about 78.9.",
				question.CategoryDataAnalysis, question.DifficultyHard),
			q("rea-001",
				"In the passage \"The Lighthouse Keeper\", the narrator's shift in perspective primarily serves to:",
				[]string{"introduce a new character", "contrast past and present views of duty", "describe the lighthouse mechanism", "explain a historical event"},
				1,
				"The narrator moves from childhood memories to an adult reassessment of the keeper's obligations.",
				question.CategoryReading, question.DifficultyMedium),
			q("voc-001",
				"As used in the sentence \"her remarks were pointed but never malicious\", \"pointed\" most nearly means:",
				[]string{"sharp-edged", "direct", "quiet", "rehearsed"},
				1,
				"In context, pointed describes remarks that are direct and targeted.",
				question.CategoryVocabulary, question.DifficultyMedium),
			q("gra-001",
				"Select the choice that corrects the sentence: \"The team of engineers were late.\"",
				[]string{"The team of engineers were lately.", "The team of engineers was late.", "The team of engineers being late.", "No change."},
				1,
				"\"Team\" is a singular collective noun, so it takes \"was\".",
				question.CategoryGrammar, question.DifficultyEasy),
			q("wri-001",
				"Which choice most effectively combines the sentences \"The data was collected. It was then analyzed.\"?",
				[]string{"The data was collected, it was then analyzed.", "The data was collected and then analyzed.", "Collected, the data then analyzed.", "The data, which was collected, being analyzed."},
				1,
				"A single clause with a compound verb avoids the comma splice and the dangling modifiers.",
				question.CategoryWriting, question.DifficultyMedium),
		},
		Passages: []question.Passage{
			{
				ID:          "psg-001",
				Title:       "The Lighthouse Keeper",
				Body:        "When I was a child the lighthouse seemed a place of endless leisure, its keeper a man paid to watch the sea. Only years later, reading his logbooks, did I understand the arithmetic of his nights: the wicks trimmed on the hour, the weights wound, the fog bell counted against the clock. What I had taken for idleness was vigilance of the most exacting kind.",
				QuestionIDs: []string{"rea-001"},
			},
		},
	}

	for i := range cat.Questions {
		if cat.Questions[i].ID == "rea-001" {
			cat.Questions[i].PassageID = "psg-001"
		}
	}
	return cat
}
