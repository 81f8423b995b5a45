package engine

import (
	"context"
	"time"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// Gateway commits a finished draft and returns the new portfolio id.
// Implementations must respect the context deadline.
type Gateway interface {
	Commit(ctx context.Context, userID string, draft domain.PortfolioDraft) (string, error)
}

// State is the per-conversation engine state. It serializes to JSON so it
// can live in an external session store between messages. The engine owns
// the draft exclusively until commit.
type State struct {
	CurrentStep    domain.Step           `json:"current_step"`
	Draft          domain.PortfolioDraft `json:"draft"`
	SocialCursor   domain.Platform       `json:"social_cursor,omitempty"`
	CommitInFlight bool                  `json:"commit_in_flight,omitempty"`
	DisplayName    string                `json:"display_name,omitempty"`
}

// NewState returns an idle state with an empty draft.
func NewState() *State {
	return &State{
		CurrentStep: domain.StepNone,
		Draft:       domain.NewPortfolioDraft(),
	}
}

// Trace is one notable state transition produced while processing a message.
// The caller turns traces into persisted events.
type Trace struct {
	Type    domain.EventType
	Payload any
}

// Engine is the guided-portfolio conversation engine. It is stateless across
// conversations: all per-conversation data lives in the State the caller
// threads through ProcessMessage.
type Engine struct {
	cfg           *DialogConfig
	classifier    *Classifier
	gateway       Gateway
	registry      map[domain.Step]handler
	commitTimeout time.Duration
}

// New builds an engine over the given dialog tables and persistence gateway.
func New(cfg *DialogConfig, gateway Gateway, commitTimeout time.Duration) *Engine {
	e := &Engine{
		cfg:           cfg,
		classifier:    NewClassifier(cfg.Intents),
		gateway:       gateway,
		commitTimeout: commitTimeout,
	}
	e.registry = e.buildRegistry()
	return e
}

// ProcessMessage applies one inbound message to st and returns the reply
// plus any traces. The caller must serialize calls for a single
// conversation; no two messages for one session may be processed
// concurrently.
func (e *Engine) ProcessMessage(ctx context.Context, st *State, req domain.ChatRequest) (domain.ChatReply, []Trace) {
	if st.CommitInFlight {
		return domain.ChatReply{Response: e.cfg.Responses.Busy, Progress: e.progress(st)}, nil
	}
	if name := req.DisplayName; name != "" {
		st.DisplayName = name
	}

	if st.CurrentStep == domain.StepNone {
		return e.handleIdle(st, req.Content)
	}

	h, ok := e.registry[st.CurrentStep]
	if !ok {
		// Unknown step in stored state: restart the conversation.
		*st = *NewState()
		return e.handleIdle(st, req.Content)
	}

	// While a step is active every message goes to its handler, regardless
	// of classified intent. The guided flow has absolute priority, so
	// "help" mid-flow is treated as step input.
	t := h(st, req.Content)

	var traces []Trace
	if t.itemCount > 0 {
		traces = append(traces, Trace{domain.EventTypeItemAdded, domain.ItemAddedPayload{Step: t.itemStep, Count: t.itemCount}})
	}

	switch t.outcome {
	case OutcomeAdvance:
		reply, more := e.advance(st, t)
		return reply, append(traces, more...)
	case OutcomeCompleted:
		reply, more := e.finalize(ctx, st, req.UserID, t)
		return reply, append(traces, more...)
	default:
		return e.stayReply(st, t), traces
	}
}

// handleIdle routes a message through the intent classifier while no step is
// active.
func (e *Engine) handleIdle(st *State, content string) (domain.ChatReply, []Trace) {
	intent, confidence := e.classifier.Classify(content)
	switch {
	case intent == IntentCreatePortfolio:
		return e.startFlow(st)
	case intent == IntentGreet && confidence > 0.5:
		return domain.ChatReply{Response: e.cfg.GreetingFor(st.DisplayName), Suggestions: e.cfg.IdleSuggestions}, nil
	case intent == IntentHelp:
		return domain.ChatReply{Response: e.cfg.Responses.Help, Suggestions: e.cfg.IdleSuggestions}, nil
	case intent == IntentExamples:
		return domain.ChatReply{Response: e.cfg.Responses.Examples, Suggestions: e.cfg.IdleSuggestions}, nil
	default:
		return domain.ChatReply{Response: e.cfg.Responses.Fallback, Suggestions: e.cfg.IdleSuggestions}, nil
	}
}

// startFlow opens the guided flow on the first step and seeds the draft
// title from the display name.
func (e *Engine) startFlow(st *State) (domain.ChatReply, []Trace) {
	first := domain.StepOrder[0]
	st.CurrentStep = first

	name := st.DisplayName
	if name == "" {
		name = e.cfg.DefaultName
	}
	st.Draft.Title = name + "'s Portfolio"

	text := e.cfg.Steps[first]
	reply := domain.ChatReply{
		Response:    e.cfg.GreetingFor(st.DisplayName),
		Prompt:      text.Prompt,
		Suggestions: text.Suggestions,
		Progress:    e.progress(st),
	}
	return reply, []Trace{{domain.EventTypeStepAdvanced, domain.StepAdvancedPayload{From: domain.StepNone, To: first}}}
}

// advance moves the session to the next step and composes its prompt. The
// social-links step gets an immediate zero-input touch so the first platform
// prompt goes out with the transition.
func (e *Engine) advance(st *State, t turn) (domain.ChatReply, []Trace) {
	from := st.CurrentStep
	next := from.Next()
	st.CurrentStep = next
	traces := []Trace{{domain.EventTypeStepAdvanced, domain.StepAdvancedPayload{From: from, To: next}}}

	text := e.cfg.Steps[next]
	if next == domain.StepSocialLinks {
		touch := e.handleSocialLinks(st, "")
		return domain.ChatReply{
			Response: joinSentences(t.response, text.Prompt),
			Prompt:   touch.prompt,
			Progress: e.progress(st),
		}, traces
	}
	return domain.ChatReply{
		Response:    t.response,
		Prompt:      text.Prompt,
		Suggestions: text.Suggestions,
		Progress:    e.progress(st),
	}, traces
}

// finalize commits the draft. Success resets the session; failure keeps the
// draft intact so the user can retry without re-entering anything. The
// in-flight latch blocks a duplicate submission while the gateway call is
// outstanding.
func (e *Engine) finalize(ctx context.Context, st *State, userID string, t turn) (domain.ChatReply, []Trace) {
	st.CommitInFlight = true
	cctx, cancel := context.WithTimeout(ctx, e.commitTimeout)
	defer cancel()
	portfolioID, err := e.gateway.Commit(cctx, userID, st.Draft)
	st.CommitInFlight = false

	if err != nil {
		st.SocialCursor = ""
		return domain.ChatReply{
			Response:    e.cfg.Responses.CommitFailed,
			Suggestions: []string{"Retry", "Contact support"},
			Progress:    e.progress(st),
		}, []Trace{{domain.EventTypeCommitFailed, domain.CommitFailedPayload{Reason: err.Error()}}}
	}

	*st = *NewState()
	total := len(domain.StepOrder)
	return domain.ChatReply{
		Response:  joinSentences(t.response, e.cfg.Responses.Completed),
		Completed: true,
		Progress:  &domain.Progress{CurrentStepIndex: total, TotalSteps: total, Percentage: 100},
	}, []Trace{{domain.EventTypeCommitSucceeded, domain.CommitSucceededPayload{PortfolioID: portfolioID}}}
}
