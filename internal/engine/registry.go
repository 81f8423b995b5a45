package engine

import "github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"

// Outcome is the explicit result of applying one message to the active step.
// Every handler branch returns one; there is no fallthrough default.
type Outcome int

const (
	// OutcomeStay keeps the session on the current step.
	OutcomeStay Outcome = iota
	// OutcomeAdvance moves the session to the next step in order.
	OutcomeAdvance
	// OutcomeCompleted means the final step finished and the draft is ready
	// to commit.
	OutcomeCompleted
	// OutcomeFailed means the draft commit was attempted and rejected.
	OutcomeFailed
)

// turn is the internal result of one step handler invocation.
type turn struct {
	outcome     Outcome
	response    string
	prompt      string
	suggestions []string

	// Set when an item was appended to a draft collection.
	itemStep  domain.Step
	itemCount int
}

// handler applies one user message to the active step, mutating the draft
// and cursor in place.
type handler func(st *State, input string) turn

func (e *Engine) buildRegistry() map[domain.Step]handler {
	return map[domain.Step]handler{
		domain.StepBio:         e.handleBio,
		domain.StepSkills:      e.handleSkills,
		domain.StepProjects:    e.handleProjects,
		domain.StepExperience:  e.handleExperience,
		domain.StepSocialLinks: e.handleSocialLinks,
	}
}
