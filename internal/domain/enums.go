// Package domain defines the core domain models for the portfolio engine.
package domain

// Step identifies one stage of the guided portfolio flow.
type Step string

const (
	StepNone        Step = "none"
	StepBio         Step = "bio"
	StepSkills      Step = "skills"
	StepProjects    Step = "projects"
	StepExperience  Step = "experience"
	StepSocialLinks Step = "social_links"
)

// StepOrder is the fixed progression of the guided flow. StepNone is not part
// of the order; it marks an idle session.
var StepOrder = []Step{StepBio, StepSkills, StepProjects, StepExperience, StepSocialLinks}

// Index returns the 0-based position of s in StepOrder, or -1 for StepNone
// and unknown steps.
func (s Step) Index() int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the step that follows s in the flow, or StepNone when s is the
// last step.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i+1 >= len(StepOrder) {
		return StepNone
	}
	return StepOrder[i+1]
}

// Platform is one of the fixed social-link platforms.
type Platform string

const (
	PlatformGitHub    Platform = "github"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
)

// PlatformOrder is the order in which the social-link subflow prompts for
// usernames.
var PlatformOrder = []Platform{PlatformGitHub, PlatformTwitter, PlatformLinkedIn, PlatformInstagram}

// EventType represents the type of a conversation event.
type EventType string

const (
	EventTypeSessionStarted  EventType = "session_started"
	EventTypeStepAdvanced    EventType = "step_advanced"
	EventTypeItemAdded       EventType = "item_added"
	EventTypePolicyDecision  EventType = "policy_decision"
	EventTypeCommitSucceeded EventType = "commit_succeeded"
	EventTypeCommitFailed    EventType = "commit_failed"
)
