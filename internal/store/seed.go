package store

import "github.com/jonathan/interview-agent/internal/types"

// SeedQuestions returns the curated starter set for a fresh bank. Ids are
// assigned by Create so the seed composes with any existing bank content.
func SeedQuestions() []*types.Question {
	return []*types.Question{
		{
			Question:    "What Excel function would you use to sum values in range A1:A10?",
			Type:        types.QuestionTypeFormula,
			Category:    "basic_formulas",
			Difficulty:  types.DifficultyBasic,
			Keywords:    []string{"SUM", "formula", "range"},
			TargetRoles: []string{types.RoleFinance, types.RoleOperations, types.RoleDataAnalytics},
		},
		{
			Question:    "How would you remove duplicate values from a dataset in Excel?",
			Type:        types.QuestionTypeConcept,
			Category:    "data_manipulation",
			Difficulty:  types.DifficultyIntermediate,
			Keywords:    []string{"remove duplicates", "data", "filter", "unique"},
			TargetRoles: []string{types.RoleDataAnalytics, types.RoleOperations},
		},
		{
			Question:    "Explain the difference between VLOOKUP and INDEX-MATCH functions.",
			Type:        types.QuestionTypeConcept,
			Category:    "lookup_functions",
			Difficulty:  types.DifficultyAdvanced,
			Keywords:    []string{"VLOOKUP", "INDEX", "MATCH", "lookup"},
			TargetRoles: []string{types.RoleFinance, types.RoleDataAnalytics},
		},
		{
			Question:    "How would you create a pivot table to analyze sales data by region and product?",
			Type:        types.QuestionTypeConcept,
			Category:    "data_analysis",
			Difficulty:  types.DifficultyIntermediate,
			Keywords:    []string{"pivot table", "sales data", "analysis", "region"},
			TargetRoles: []string{types.RoleFinance, types.RoleOperations, types.RoleDataAnalytics},
		},
		{
			Question:    "What's the difference between absolute and relative cell references? Give examples.",
			Type:        types.QuestionTypeConcept,
			Category:    "basic_formulas",
			Difficulty:  types.DifficultyBasic,
			Keywords:    []string{"absolute", "relative", "cell reference", "$"},
			TargetRoles: []string{types.RoleFinance, types.RoleOperations, types.RoleDataAnalytics},
		},
		{
			Question:    "How would you use SUMIF to calculate total sales for a specific product?",
			Type:        types.QuestionTypeFormula,
			Category:    "advanced_formulas",
			Difficulty:  types.DifficultyIntermediate,
			Keywords:    []string{"SUMIF", "conditional", "criteria", "sales"},
			TargetRoles: []string{types.RoleFinance, types.RoleOperations},
		},
	}
}
