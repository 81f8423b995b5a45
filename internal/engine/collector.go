package engine

import (
	"fmt"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// handleBio stores the bio and advances. Scalar steps have no accumulation:
// one valid answer completes them.
func (e *Engine) handleBio(st *State, input string) turn {
	res := validateBio(input)
	if !res.Valid {
		return turn{outcome: OutcomeStay, response: res.Feedback, suggestions: res.Suggestions}
	}
	st.Draft.Bio = res.Bio
	return turn{outcome: OutcomeAdvance, response: "Nice, your bio is saved."}
}

func (e *Engine) handleSkills(st *State, input string) turn {
	res := validateSkills(input)
	if !res.Valid {
		return turn{outcome: OutcomeStay, response: res.Feedback, suggestions: res.Suggestions}
	}
	st.Draft.Skills = res.Skills
	return turn{outcome: OutcomeAdvance, response: fmt.Sprintf("Got it, %d skills saved.", len(res.Skills))}
}

// handleProjects accumulates project entries until the "done" terminator.
// Each valid entry is appended immediately and the step stays active.
func (e *Engine) handleProjects(st *State, input string) turn {
	res := validateProject(input, len(st.Draft.Projects))
	if !res.Valid {
		return turn{outcome: OutcomeStay, response: res.Feedback, suggestions: res.Suggestions}
	}
	if res.Done {
		return turn{outcome: OutcomeAdvance, response: fmt.Sprintf("Projects saved, %d in total.", len(st.Draft.Projects))}
	}
	st.Draft.Projects = append(st.Draft.Projects, *res.Project)
	count := len(st.Draft.Projects)
	return turn{
		outcome:     OutcomeStay,
		response:    fmt.Sprintf("Added %q. That's %d so far. Add another or say \"done\".", res.Project.Title, count),
		suggestions: []string{"done"},
		itemStep:    domain.StepProjects,
		itemCount:   count,
	}
}

// handleExperience accumulates experience entries. "done" advances even with
// nothing stored, so the step is skippable.
func (e *Engine) handleExperience(st *State, input string) turn {
	res := validateExperience(input)
	if !res.Valid {
		return turn{outcome: OutcomeStay, response: res.Feedback, suggestions: res.Suggestions}
	}
	if res.Done {
		return turn{outcome: OutcomeAdvance, response: fmt.Sprintf("Experience saved, %d entries.", len(st.Draft.Experience))}
	}
	st.Draft.Experience = append(st.Draft.Experience, *res.Experience)
	count := len(st.Draft.Experience)
	return turn{
		outcome:     OutcomeStay,
		response:    fmt.Sprintf("Added %s at %s. That's %d so far. Add another or say \"done\".", res.Experience.Role, res.Experience.Company, count),
		suggestions: []string{"done"},
		itemStep:    domain.StepExperience,
		itemCount:   count,
	}
}
