package domain

// Confidence represents how strongly the engine believes a recommendation
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Category represents a recommendation category tag
type Category string

const (
	CategoryQuickWin       Category = "quick-win"
	CategoryRedemptionArc  Category = "redemption-arc"
	CategoryHiddenGem      Category = "hidden-gem"
	CategoryMercyKill      Category = "mercy-kill"
	CategoryWeekendProject Category = "weekend-project"
)

// Recommendation is a scored suggestion produced by the engine. Entry points
// back into the backlog snapshot the engine was called with; recommendations
// carry no identity across calls and are rebuilt on every invocation.
type Recommendation struct {
	Entry      *BacklogEntry `json:"entry"`
	Reason     string        `json:"reason"`
	Confidence Confidence    `json:"confidence"`
	Category   Category      `json:"category"`
}

// PlanType represents the kind of action an ActionPlan asks for
type PlanType string

const (
	PlanPlay     PlanType = "play"
	PlanComplete PlanType = "complete"
	PlanAmnesty  PlanType = "amnesty"
	PlanStreak   PlanType = "streak"
)

// Difficulty represents how demanding an ActionPlan is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ActionPlan is a gamified task with a fixed point reward. TargetGames
// reference entries of the backlog snapshot and may be empty.
type ActionPlan struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Points      int             `json:"points"`
	Difficulty  Difficulty      `json:"difficulty"`
	Type        PlanType        `json:"type"`
	TargetGames []*BacklogEntry `json:"target_games"`
}

// Message is a situational greeting or commentary for the display layer
type Message struct {
	Text    string `json:"text"`
	Subtext string `json:"subtext,omitempty"`
	Emoji   string `json:"emoji,omitempty"`
}
