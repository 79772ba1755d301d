package selection

import (
	"github.com/google/uuid"

	"github.com/jonathan/interview-agent/internal/generator"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

// Session is one assembled interview. The exclusion set lives on the session,
// so reusing a session across assembly calls extends the dedup window while
// fresh sessions start clean.
type Session struct {
	ID        uuid.UUID         `json:"id"`
	Role      string            `json:"role"`
	Questions []*types.Question `json:"questions"`

	used map[int64]bool
}

// NewSession starts an empty session for a role.
func NewSession(role string) *Session {
	return &Session{
		ID:   uuid.New(),
		Role: role,
		used: make(map[int64]bool),
	}
}

func (s *Session) add(q *types.Question) {
	s.Questions = append(s.Questions, q)
	s.used[q.ID] = true
}

// Contains reports whether the session already holds the question id.
func (s *Session) Contains(id int64) bool {
	return s.used[id]
}

// Selector assembles sessions from a ranked chain of supply sources.
type Selector struct {
	providers    []Provider
	roleFallback Provider
}

// NewSelector builds the standard chain: template generation first, stored
// category+difficulty fallback second, role-only fallback last.
func NewSelector(st *store.Store, gen *generator.Generator) *Selector {
	return &Selector{
		providers: []Provider{
			&TemplateProvider{Generator: gen},
			&StoreProvider{Store: st},
		},
		roleFallback: &RoleProvider{Store: st},
	}
}

// Assemble fills session slots for a role: count is split across the three
// difficulty tiers, each slot is offered to the provider chain in order, and
// any remaining shortfall is filled from role-matching questions regardless
// of tier. Returns min(count, available unique questions) items; a shortage
// is never an error.
func (s *Selector) Assemble(role string, count int) *Session {
	session := NewSession(role)
	if count <= 0 {
		return session
	}

	categories := generator.RoleFocus(role)
	basic, intermediate, advanced := SplitCount(count)
	quotas := []struct {
		difficulty types.Difficulty
		slots      int
	}{
		{types.DifficultyBasic, basic},
		{types.DifficultyIntermediate, intermediate},
		{types.DifficultyAdvanced, advanced},
	}

	for _, quota := range quotas {
		for slot := 0; slot < quota.slots; slot++ {
			criteria := Criteria{
				Categories: categories,
				Difficulty: quota.difficulty,
				Role:       role,
				Exclude:    session.used,
			}
			for _, provider := range s.providers {
				if q, ok := provider.Produce(criteria); ok {
					session.add(q)
					break
				}
			}
		}
	}

	for len(session.Questions) < count {
		q, ok := s.roleFallback.Produce(Criteria{Role: role, Exclude: session.used})
		if !ok {
			break
		}
		session.add(q)
	}

	if len(session.Questions) > count {
		session.Questions = session.Questions[:count]
	}
	return session
}

// SplitCount partitions count across the difficulty tiers as evenly as
// possible, the basic tier absorbing the first remainder unit and the
// intermediate tier the second.
func SplitCount(count int) (basic, intermediate, advanced int) {
	base := count / 3
	remainder := count % 3
	basic = base
	intermediate = base
	advanced = base
	if remainder > 0 {
		basic++
	}
	if remainder > 1 {
		intermediate++
	}
	return basic, intermediate, advanced
}
