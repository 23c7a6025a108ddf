package backendstub

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps any of its keywords to a category.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Rules is an ordered keyword table; the first matching rule wins.
type Rules struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// DefaultRules returns the built-in keyword table.
func DefaultRules() Rules {
	return Rules{
		Default: "other",
		Rules: []Rule{
			{Category: "invoice", Keywords: []string{"invoice", "payment due", "billing", "receipt"}},
			{Category: "spam", Keywords: []string{"free money", "winner", "claim your prize", "act now"}},
			{Category: "meeting", Keywords: []string{"meeting", "calendar", "agenda", "reschedule"}},
			{Category: "shipping", Keywords: []string{"shipped", "tracking number", "delivery", "parcel"}},
			{Category: "newsletter", Keywords: []string{"unsubscribe", "newsletter", "weekly digest"}},
		},
	}
}

// LoadRules reads a YAML keyword table from path.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if strings.TrimSpace(rules.Default) == "" {
		rules.Default = "other"
	}
	for i, rule := range rules.Rules {
		if strings.TrimSpace(rule.Category) == "" {
			return Rules{}, fmt.Errorf("parse rules %s: rule %d has no category", path, i)
		}
	}
	return rules, nil
}

// Classify returns the category of the first rule with a keyword in text.
func (r Rules) Classify(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range r.Rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Category
			}
		}
	}
	return r.Default
}
