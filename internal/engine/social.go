package engine

import (
	"fmt"
	"strings"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// handleSocialLinks walks the fixed platform list one prompt per message.
// With no cursor set it only places the cursor and asks for the first
// missing platform, consuming no input. Once every platform is stored the
// turn is Completed; every intermediate exchange is an explicit Stay.
func (e *Engine) handleSocialLinks(st *State, input string) turn {
	if st.SocialCursor == "" {
		next, ok := e.nextPlatform(st)
		if !ok {
			// Everything is already stored: this is a retry after a
			// failed commit.
			return turn{outcome: OutcomeCompleted, response: "Retrying the save."}
		}
		st.SocialCursor = next
		return turn{outcome: OutcomeStay, prompt: e.cfg.PromptForPlatform(next)}
	}

	username := strings.TrimSpace(input)
	if !validUsername(username) {
		return turn{
			outcome:  OutcomeStay,
			response: fmt.Sprintf("That doesn't look like a valid %s username.", st.SocialCursor),
			prompt:   e.cfg.PromptForPlatform(st.SocialCursor),
		}
	}

	saved := st.SocialCursor
	st.Draft.SocialLinks[saved] = username
	count := len(st.Draft.SocialLinks)

	next, ok := e.nextPlatform(st)
	if !ok {
		st.SocialCursor = ""
		return turn{
			outcome:   OutcomeCompleted,
			response:  fmt.Sprintf("%s saved.", saved),
			itemStep:  domain.StepSocialLinks,
			itemCount: count,
		}
	}
	st.SocialCursor = next
	return turn{
		outcome:   OutcomeStay,
		response:  fmt.Sprintf("%s saved.", saved),
		prompt:    e.cfg.PromptForPlatform(next),
		itemStep:  domain.StepSocialLinks,
		itemCount: count,
	}
}

// nextPlatform returns the first platform in configured order without a
// stored username.
func (e *Engine) nextPlatform(st *State) (domain.Platform, bool) {
	for _, p := range e.cfg.Platforms {
		if _, ok := st.Draft.SocialLinks[p]; !ok {
			return p, true
		}
	}
	return "", false
}
