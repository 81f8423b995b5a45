package domain

// ChatRequest represents one inbound chat message from the client.
type ChatRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Content     string `json:"content"`
}

// Progress reports how far the guided flow has advanced. It is informational
// only and never drives control flow.
type Progress struct {
	CurrentStepIndex int `json:"current_step_index"`
	TotalSteps       int `json:"total_steps"`
	Percentage       int `json:"percentage"`
}

// ChatReply is the outward reply for one processed message.
type ChatReply struct {
	Response    string    `json:"response"`
	Prompt      string    `json:"prompt,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Progress    *Progress `json:"progress,omitempty"`
	Completed   bool      `json:"completed"`
}
