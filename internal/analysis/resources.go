package analysis

import (
	"strings"

	"github.com/satpilot/backend/internal/domain/question"
)

// categoryReference is the static per-category entry backing recommendations.
type categoryReference struct {
	Resources   []string
	QuestionIDs []string
}

// referenceTable maps each catalog category to study resources and suggested
// catalog questions. IDs refer to the built-in catalog.
var referenceTable = map[question.Category]categoryReference{
	question.CategoryAlgebra: {
		Resources: []string{
			"Khan Academy: Solving linear equations and inequalities",
			"College Board: Heart of Algebra practice set",
		},
		QuestionIDs: []string{"alg-001", "alg-002"},
	},
	question.CategoryGeometry: {
		Resources: []string{
			"Khan Academy: Geometry and trigonometry review",
			"College Board: Additional Topics in Math practice set",
		},
		QuestionIDs: []string{"geo-001"},
	},
	question.CategoryAdvancedMath: {
		Resources: []string{
			"Khan Academy: Quadratics and polynomial functions",
			"College Board: Passport to Advanced Math practice set",
		},
		QuestionIDs: []string{"adv-001"},
	},
	question.CategoryDataAnalysis: {
		Resources: []string{
			"Khan Academy: Ratios, rates, and percentages",
			"College Board: Problem Solving and Data Analysis practice set",
		},
		QuestionIDs: []string{"dat-001"},
	},
	question.CategoryReading: {
		Resources: []string{
			"Khan Academy: Reading — command of evidence",
			"College Board: Reading Test practice passages",
		},
		QuestionIDs: []string{"rea-001"},
	},
	question.CategoryVocabulary: {
		Resources: []string{
			"Khan Academy: Words in context",
			"Vocabulary.com: SAT word lists",
		},
		QuestionIDs: []string{"voc-001"},
	},
	question.CategoryGrammar: {
		Resources: []string{
			"Khan Academy: Standard English conventions",
			"College Board: Writing and Language practice set",
		},
		QuestionIDs: []string{"gra-001"},
	},
	question.CategoryWriting: {
		Resources: []string{
			"Khan Academy: Expression of ideas",
			"College Board: Writing and Language practice set",
		},
		QuestionIDs: []string{"wri-001"},
	},
}

// genericReference yields placeholders for categories absent from the table
// rather than failing.
func genericReference(cat question.Category) categoryReference {
	return categoryReference{
		Resources: []string{
			"General SAT practice for " + displayName(cat),
		},
		QuestionIDs: nil,
	}
}

// displayName renders a category tag for human-readable text.
func displayName(cat question.Category) string {
	return strings.ReplaceAll(string(cat), "_", " ")
}
