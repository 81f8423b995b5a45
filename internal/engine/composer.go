package engine

import (
	"math"
	"strings"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// progress reports how far the flow has advanced. Steps before the current
// one count as completed. Informational only; nothing branches on it.
func (e *Engine) progress(st *State) *domain.Progress {
	idx := st.CurrentStep.Index()
	if idx < 0 {
		return nil
	}
	total := len(domain.StepOrder)
	return &domain.Progress{
		CurrentStepIndex: idx,
		TotalSteps:       total,
		Percentage:       int(math.Round(float64(idx) / float64(total) * 100)),
	}
}

// stayReply composes the reply for a turn that keeps the current step.
func (e *Engine) stayReply(st *State, t turn) domain.ChatReply {
	return domain.ChatReply{
		Response:    t.response,
		Prompt:      t.prompt,
		Suggestions: t.suggestions,
		Progress:    e.progress(st),
	}
}

// joinSentences concatenates the non-empty parts with single spaces.
func joinSentences(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
