// Package engine implements the rule-based guided-portfolio conversation
// engine: intent classification, the multi-step collection state machine,
// and draft commit through a persistence gateway.
package engine

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

//go:embed dialog.yaml
var defaultDialogYAML []byte

// Intent names the classifier can return. They must match the intent names
// in the dialog tables.
const (
	IntentGreet           = "greet"
	IntentCreatePortfolio = "create_portfolio"
	IntentHelp            = "help"
	IntentExamples        = "examples"
)

// Intent is one classifiable intent with its trigger phrases. Declaration
// order in the dialog tables is significant: on a score tie the earlier
// intent wins.
type Intent struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// StepText holds the user-facing prompt and quick-reply suggestions for one
// step of the flow.
type StepText struct {
	Prompt      string   `yaml:"prompt"`
	Suggestions []string `yaml:"suggestions"`
}

// Responses holds the canned replies for idle-mode intents and terminal
// outcomes.
type Responses struct {
	Help         string `yaml:"help"`
	Examples     string `yaml:"examples"`
	Fallback     string `yaml:"fallback"`
	Busy         string `yaml:"busy"`
	Completed    string `yaml:"completed"`
	CommitFailed string `yaml:"commit_failed"`
}

// DialogConfig is the full table of intents, prompts, and platforms driving
// the conversation. It is data, not control flow: adding an intent or a
// platform requires no code change.
type DialogConfig struct {
	Greeting        string                   `yaml:"greeting"`
	DefaultName     string                   `yaml:"default_name"`
	IdleSuggestions []string                 `yaml:"idle_suggestions"`
	Intents         []Intent                 `yaml:"intents"`
	Steps           map[domain.Step]StepText `yaml:"steps"`
	Platforms       []domain.Platform        `yaml:"platforms"`
	PlatformPrompt  string                   `yaml:"platform_prompt"`
	Responses       Responses                `yaml:"responses"`
}

// LoadDialogConfig reads the dialog tables from path, or the embedded
// default when path is empty.
func LoadDialogConfig(path string) (*DialogConfig, error) {
	data := defaultDialogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dialog config: %w", err)
		}
		data = b
	}
	var cfg DialogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dialog config: %w", err)
	}
	if len(cfg.Platforms) == 0 {
		cfg.Platforms = domain.PlatformOrder
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the tables cover every step and at least one platform.
func (c *DialogConfig) Validate() error {
	if len(c.Intents) == 0 {
		return fmt.Errorf("dialog config: no intents defined")
	}
	for _, step := range domain.StepOrder {
		if _, ok := c.Steps[step]; !ok {
			return fmt.Errorf("dialog config: missing step text for %q", step)
		}
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("dialog config: no platforms defined")
	}
	if !strings.Contains(c.PlatformPrompt, "{platform}") {
		return fmt.Errorf("dialog config: platform_prompt missing {platform} placeholder")
	}
	return nil
}

// GreetingFor renders the greeting for the given display name, falling back
// to the configured default name.
func (c *DialogConfig) GreetingFor(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = c.DefaultName
	}
	return strings.ReplaceAll(c.Greeting, "{name}", name)
}

// PromptForPlatform renders the username prompt for one platform.
func (c *DialogConfig) PromptForPlatform(p domain.Platform) string {
	return strings.ReplaceAll(c.PlatformPrompt, "{platform}", string(p))
}
