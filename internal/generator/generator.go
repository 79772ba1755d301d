// Package generator produces candidate questions from parameterized templates.
package generator

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/interview-agent/internal/types"
)

// Generator renders ephemeral questions from a template set. Generated
// questions are not persisted; callers hand them to the store when they want
// them durable.
type Generator struct {
	templates []Template
	rng       *rand.Rand
}

// New creates a Generator over the given templates.
func New(templates []Template) *Generator {
	return NewSeeded(templates, time.Now().UnixNano())
}

// NewSeeded creates a Generator with a fixed random seed, for reproducible
// generation.
func NewSeeded(templates []Template, seed int64) *Generator {
	return &Generator{
		templates: templates,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Generate renders one question from a template matching any of the given
// categories at the given difficulty. Each placeholder is filled with a
// uniformly chosen option. Returns false when no template matches.
func (g *Generator) Generate(categories []string, difficulty types.Difficulty) (*types.Question, bool) {
	suitable := make([]Template, 0, len(g.templates))
	for _, t := range g.templates {
		if t.Difficulty == difficulty && containsCategory(categories, t.Category) {
			suitable = append(suitable, t)
		}
	}
	if len(suitable) == 0 {
		return nil, false
	}

	template := suitable[g.rng.Intn(len(suitable))]
	text := g.fillTemplate(template)

	return &types.Question{
		ID:         QuestionID(text),
		Question:   text,
		Type:       deriveType(text),
		Category:   template.Category,
		Difficulty: difficulty,
		Keywords:   ExtractKeywords(text),
		Generated:  true,
	}, true
}

func (g *Generator) fillTemplate(t Template) string {
	text := t.Pattern
	for name, options := range t.Options {
		choice := options[g.rng.Intn(len(options))]
		text = strings.ReplaceAll(text, "{"+name+"}", choice)
	}
	return text
}

// QuestionID derives a question id from rendered text: the 64-bit FNV-1a
// digest folded into the positive int63 space. Identical renderings map to
// the same id, which is what deduplicates repeated generations downstream.
func QuestionID(text string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	id := int64(h.Sum64() & 0x7fffffffffffffff)
	if id == 0 {
		id = 1
	}
	return id
}

// ExtractKeywords collects the all-uppercase tokens from rendered text.
// A crude heuristic: acronyms like SUM or VLOOKUP qualify, ordinary words
// do not.
func ExtractKeywords(text string) []string {
	var keywords []string
	for _, token := range strings.Fields(text) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token == "" || !isAllUpper(token) {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

func isAllUpper(token string) bool {
	hasLetter := false
	for _, r := range token {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func deriveType(text string) types.QuestionType {
	if strings.Contains(strings.ToLower(text), "function") {
		return types.QuestionTypeFormula
	}
	return types.QuestionTypeConcept
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
