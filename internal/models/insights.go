package models

type Strength struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type Recommendation struct {
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Icon        string   `json:"icon"`
}

type SkillGap struct {
	Area       string   `json:"area"`
	Suggestion string   `json:"suggestion"`
	Importance Priority `json:"importance"`
}

type CurrentPosition struct {
	Level          string `json:"level"`
	Specialization string `json:"specialization,omitempty"`
	EstimatedRole  string `json:"estimated_role,omitempty"`
}

type CareerMilestone struct {
	Timeframe string   `json:"timeframe"`
	Goal      string   `json:"goal"`
	Steps     []string `json:"steps"`
}

type CareerPath struct {
	Current CurrentPosition   `json:"current"`
	Paths   []CareerMilestone `json:"paths"`
}

type LearningTask struct {
	Task        string `json:"task"`
	Description string `json:"description"`
	Effort      string `json:"effort"`
}

type LearningPlan struct {
	Immediate []LearningTask `json:"immediate"`
	ShortTerm []LearningTask `json:"short_term"`
	LongTerm  []LearningTask `json:"long_term"`
}

type MarketAlignment struct {
	Score          int      `json:"score"`
	Insights       []string `json:"insights"`
	Recommendation string   `json:"recommendation"`
}

type Insights struct {
	Strengths       []Strength       `json:"strengths"`
	Recommendations []Recommendation `json:"recommendations"`
	SkillGaps       []SkillGap       `json:"skill_gaps"`
	CareerPath      CareerPath       `json:"career_path"`
	LearningPlan    LearningPlan     `json:"learning_plan"`
	MarketAlignment MarketAlignment  `json:"market_alignment"`
}
