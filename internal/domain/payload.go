package domain

// StepAdvancedPayload is the payload for step_advanced events.
type StepAdvancedPayload struct {
	From Step `json:"from"`
	To   Step `json:"to"`
}

// ItemAddedPayload is the payload for item_added events.
type ItemAddedPayload struct {
	Step  Step `json:"step"`
	Count int  `json:"count"`
}

// PolicyDecisionPayload is the payload for policy_decision events.
type PolicyDecisionPayload struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// CommitSucceededPayload is the payload for commit_succeeded events.
type CommitSucceededPayload struct {
	PortfolioID string `json:"portfolio_id"`
}

// CommitFailedPayload is the payload for commit_failed events.
type CommitFailedPayload struct {
	Reason string `json:"reason"`
}
