// Package policy gates portfolio commits through an OPA policy.
package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.portfolio_policy"),
		rego.Module("portfolio_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks a portfolio snapshot against the publication policy.
// Input is a map with keys: user_id, title, bio, skills, projects,
// experience, social_links. Returns: decision (allow, block), reason, error.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "allow", "default", nil
	}

	obj, ok := results[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return "allow", "unexpected return type", nil
	}

	decision, _ := obj["decision"].(string)
	if decision == "" {
		decision = "allow"
	}

	var reasons []string
	if violations, ok := obj["violations"].([]interface{}); ok {
		for _, v := range violations {
			if s, ok := v.(string); ok {
				reasons = append(reasons, s)
			}
		}
	}
	return decision, strings.Join(reasons, "; "), nil
}

// DefaultPolicy is the default publication policy content.
const DefaultPolicy = `
package portfolio_policy

import rego.v1

banned_terms := ["spam", "scam", "free crypto"]

violations contains msg if {
	count(input.skills) == 0
	msg := "portfolio has no skills"
}

violations contains msg if {
	some term in banned_terms
	contains(lower(input.bio), term)
	msg := sprintf("bio contains banned term %q", [term])
}

violations contains msg if {
	some project in input.projects
	some term in banned_terms
	contains(lower(project.description), term)
	msg := sprintf("project %q contains banned term %q", [project.title, term])
}

default decision := "allow"

decision := "block" if {
	count(violations) > 0
}
`
