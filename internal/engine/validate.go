package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// ValidationResult is the outcome of applying one validator to one message.
// A failed validation is ordinary control flow: Feedback and Suggestions are
// always user-facing, never raw errors.
type ValidationResult struct {
	Valid bool
	Done  bool // the "done" terminator for multi-item steps

	Bio        string
	Skills     []string
	Project    *domain.Project
	Experience *domain.Experience

	Feedback    string
	Suggestions []string
}

const doneSentinel = "done"

// projectImagePlaceholder is used until image upload wires a real asset.
const projectImagePlaceholder = "/assets/project-placeholder.png"

// Ordered longest-first so "continue anyway" is stripped before "continue".
var bioBypassPhrases = []string{"continue anyway", "continue", "anyway", "skip"}

// Case-insensitive, word-bounded, so "continued" or "skipping" never count
// as a bypass. Matching against the original input keeps the reported
// offsets valid for slicing regardless of how ToLower would resize runes.
var bioBypassPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(bioBypassPhrases))
	for i, phrase := range bioBypassPhrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return patterns
}()

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// stripBypass removes the first bio bypass phrase found in input and reports
// whether one was present.
func stripBypass(input string) (string, bool) {
	for _, pattern := range bioBypassPatterns {
		if loc := pattern.FindStringIndex(input); loc != nil {
			stripped := input[:loc[0]] + input[loc[1]:]
			return strings.TrimSpace(stripped), true
		}
	}
	return input, false
}

// validateBio accepts a bio of 15 or more words outright. Shorter bios are
// rejected with a nudge unless a bypass phrase is present, in which case the
// phrase is stripped and the remainder accepted regardless of length.
func validateBio(input string) ValidationResult {
	if stripped, ok := stripBypass(input); ok {
		return ValidationResult{Valid: true, Bio: stripped}
	}
	words := strings.Fields(input)
	switch {
	case len(words) >= 15:
		return ValidationResult{Valid: true, Bio: strings.TrimSpace(input)}
	case len(words) < 10:
		return ValidationResult{
			Feedback:    "That's quite short. A good bio is at least 15 words so visitors learn who you are.",
			Suggestions: []string{"Continue anyway"},
		}
	default:
		return ValidationResult{
			Feedback:    "Almost there! A few more words would round your bio out nicely.",
			Suggestions: []string{"Continue anyway"},
		}
	}
}

// validateSkills splits on commas, trims, and drops empties. At least 3
// skills are required; there is no bypass phrase for this step.
func validateSkills(input string) ValidationResult {
	parts := strings.Split(input, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	switch {
	case len(skills) == 0:
		return ValidationResult{
			Feedback:    "List your skills separated by commas, for example: JavaScript, React, Node.",
			Suggestions: []string{"JavaScript, React, Node"},
		}
	case len(skills) < 3:
		return ValidationResult{
			Feedback:    fmt.Sprintf("I only count %d so far. Add at least 3 skills, separated by commas.", len(skills)),
			Suggestions: []string{"JavaScript, React, Node"},
		}
	default:
		return ValidationResult{Valid: true, Skills: skills}
	}
}

// validateProject parses one "Title | Description" project entry. "done" is
// valid only once at least one project has been stored.
func validateProject(input string, stored int) ValidationResult {
	if strings.EqualFold(strings.TrimSpace(input), doneSentinel) {
		if stored == 0 {
			return ValidationResult{
				Feedback:    "Add at least one project before finishing this step. Send it as: Title | Description.",
				Suggestions: []string{"MyApp | A full stack app built with react and node"},
			}
		}
		return ValidationResult{Valid: true, Done: true}
	}
	parts := strings.Split(input, "|")
	if len(parts) < 2 {
		return ValidationResult{
			Feedback:    "Send each project as: Title | Description, separated by a | character.",
			Suggestions: []string{"MyApp | A full stack app built with react and node", "done"},
		}
	}
	title := strings.TrimSpace(parts[0])
	description := strings.TrimSpace(parts[1])
	if len(title) < 3 {
		return ValidationResult{
			Feedback:    "The project title needs at least 3 characters.",
			Suggestions: []string{"done"},
		}
	}
	if len(description) < 20 {
		return ValidationResult{
			Feedback:    "The description needs at least 20 characters so the project card has some substance.",
			Suggestions: []string{"done"},
		}
	}
	return ValidationResult{
		Valid: true,
		Project: &domain.Project{
			Title:       title,
			Description: description,
			Image:       projectImagePlaceholder,
		},
	}
}

// validateExperience parses one "Role | Company | Period | Description"
// entry. All four fields must be populated. Unlike projects, "done" is
// always accepted, so the whole step can be skipped.
func validateExperience(input string) ValidationResult {
	if strings.EqualFold(strings.TrimSpace(input), doneSentinel) {
		return ValidationResult{Valid: true, Done: true}
	}
	parts := strings.Split(input, "|")
	if len(parts) != 4 {
		return ValidationResult{
			Feedback:    "Send each entry as: Role | Company | Period | Description, with all four parts.",
			Suggestions: []string{"Backend Engineer | Acme Corp | 2021-2024 | Built the billing pipeline", "done"},
		}
	}
	exp := domain.Experience{
		Role:        strings.TrimSpace(parts[0]),
		Company:     strings.TrimSpace(parts[1]),
		Period:      strings.TrimSpace(parts[2]),
		Description: strings.TrimSpace(parts[3]),
	}
	if exp.Role == "" || exp.Company == "" || exp.Period == "" || exp.Description == "" {
		return ValidationResult{
			Feedback:    "All four parts need content: Role | Company | Period | Description.",
			Suggestions: []string{"done"},
		}
	}
	return ValidationResult{Valid: true, Experience: &exp}
}

// validUsername reports whether input is an acceptable platform username.
func validUsername(input string) bool {
	return usernamePattern.MatchString(strings.TrimSpace(input))
}
