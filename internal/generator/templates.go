package generator

import "github.com/jonathan/interview-agent/internal/types"

// Template is a question pattern with named placeholders. Each placeholder
// maps to the options it may be filled with; category and difficulty are
// fixed per template.
type Template struct {
	Pattern    string
	Options    map[string][]string
	Category   string
	Difficulty types.Difficulty
}

// BaseTemplates returns the foundational template set.
func BaseTemplates() []Template {
	return []Template{
		{
			Pattern: "What function would you use to {action} in Excel?",
			Options: map[string][]string{
				"action": {"sum values in a range", "find the average", "count non-empty cells"},
			},
			Category:   "basic_formulas",
			Difficulty: types.DifficultyBasic,
		},
		{
			Pattern: "How would you {task} in a large dataset?",
			Options: map[string][]string{
				"task": {"remove duplicates", "find unique values", "filter specific criteria"},
			},
			Category:   "data_analysis",
			Difficulty: types.DifficultyIntermediate,
		},
		{
			Pattern: "Explain the difference between {concept1} and {concept2}.",
			Options: map[string][]string{
				"concept1": {"VLOOKUP", "absolute references", "SUMIF"},
				"concept2": {"INDEX-MATCH", "relative references", "SUMIFS"},
			},
			Category:   "advanced_formulas",
			Difficulty: types.DifficultyAdvanced,
		},
	}
}

// roleFocus maps each candidate role to the question categories emphasized
// for it during session assembly.
var roleFocus = map[string][]string{
	types.RoleFinance:       {"basic_formulas", "lookup_functions", "scenario_based"},
	types.RoleOperations:    {"data_analysis", "data_manipulation", "scenario_based"},
	types.RoleDataAnalytics: {"advanced_formulas", "data_analysis", "lookup_functions"},
}

// defaultFocus is used for roles without a configured emphasis.
var defaultFocus = []string{"basic_formulas"}

// RoleFocus returns the categories emphasized for a role.
func RoleFocus(role string) []string {
	if categories, ok := roleFocus[role]; ok {
		return categories
	}
	return defaultFocus
}
