// Package types provides type definitions for structured data used throughout the career advisor system.
package types

// Education levels accepted by the profile contract.
const (
	Education12th    = "12th"
	EducationDiploma = "Diploma"
	EducationUG      = "UG"
	EducationPG      = "PG"
	EducationOther   = "Other"
)

// Budget levels accepted by the profile contract.
const (
	BudgetFree = "free"
	BudgetLow  = "low"
	BudgetAny  = "any"
)

// Languages accepted by the profile contract.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// Profile field limits.
const (
	MaxSkills     = 20
	MaxInterests  = 10
	MinWeeklyTime = 1
	MaxWeeklyTime = 40
)

// Profile represents a user's career profile as submitted to the API.
// Strict validation applies at the HTTP boundary; internal re-cleaning
// coerces out-of-range values to documented defaults instead.
type Profile struct {
	Name       string   `json:"name" validate:"required,min=1"`
	Education  string   `json:"education" validate:"required,oneof=12th Diploma UG PG Other"`
	Skills     []string `json:"skills" validate:"required,min=1,max=20,dive,min=1"`
	Interests  []string `json:"interests" validate:"max=10"`
	WeeklyTime int      `json:"weeklyTime" validate:"required,min=1,max=40"`
	Budget     string   `json:"budget" validate:"required,oneof=free low any"`
	Language   string   `json:"language" validate:"required,oneof=en hi"`
}

// DefaultEducation is the coercion target for unknown education values.
func DefaultEducation() string { return EducationOther }

// DefaultBudget is the coercion target for unknown budget values.
func DefaultBudget() string { return BudgetFree }

// DefaultLanguage is the coercion target for unknown language values.
func DefaultLanguage() string { return LanguageEnglish }

// ValidEducation reports whether level is one of the documented education values.
func ValidEducation(level string) bool {
	switch level {
	case Education12th, EducationDiploma, EducationUG, EducationPG, EducationOther:
		return true
	}
	return false
}

// ValidBudget reports whether budget is one of the documented budget values.
func ValidBudget(budget string) bool {
	switch budget {
	case BudgetFree, BudgetLow, BudgetAny:
		return true
	}
	return false
}

// ValidLanguage reports whether lang is one of the supported languages.
func ValidLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageHindi
}
