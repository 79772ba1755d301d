// Package selection assembles difficulty-balanced interview sessions from the
// question supply sources.
package selection

import (
	"github.com/jonathan/interview-agent/internal/generator"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

// fallbackFetchCount is how many store candidates a fallback provider fetches
// per category, so one exclusion does not exhaust the supply.
const fallbackFetchCount = 3

// Criteria describes one session slot to fill. Exclude holds ids already
// placed in the session.
type Criteria struct {
	Categories []string
	Difficulty types.Difficulty
	Role       string
	Exclude    map[int64]bool
}

// Provider is one supply source of questions. Providers are tried in rank
// order until a slot is filled.
type Provider interface {
	Produce(c Criteria) (*types.Question, bool)
}

// TemplateProvider generates novel questions from templates.
type TemplateProvider struct {
	Generator *generator.Generator
}

// Produce renders a template question for the slot. Fails when no template
// matches or the rendering collides with an already-placed question.
func (p *TemplateProvider) Produce(c Criteria) (*types.Question, bool) {
	q, ok := p.Generator.Generate(c.Categories, c.Difficulty)
	if !ok || c.Exclude[q.ID] {
		return nil, false
	}
	return q, true
}

// StoreProvider falls back to stored questions matching category and
// difficulty, most effective first.
type StoreProvider struct {
	Store *store.Store
}

// Produce returns the best unused stored question for any of the slot's
// categories at the slot's difficulty.
func (p *StoreProvider) Produce(c Criteria) (*types.Question, bool) {
	for _, category := range c.Categories {
		candidates := p.Store.Query(store.Filter{
			Category:   category,
			Difficulty: c.Difficulty,
			Limit:      fallbackFetchCount,
		})
		for _, q := range candidates {
			if !c.Exclude[q.ID] {
				return q, true
			}
		}
	}
	return nil, false
}

// RoleProvider is the last-resort source: any stored question targeting the
// role, ignoring category and difficulty.
type RoleProvider struct {
	Store *store.Store
}

// Produce returns the most effective unused question targeting the role.
func (p *RoleProvider) Produce(c Criteria) (*types.Question, bool) {
	for _, q := range p.Store.Query(store.Filter{Role: c.Role}) {
		if !c.Exclude[q.ID] {
			return q, true
		}
	}
	return nil, false
}
