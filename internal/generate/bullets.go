// Package generate produces achievement-style résumé bullets from a short
// free-text description using verb and metric substitution. The output is
// template-based with light randomization, not inference.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

var actionVerbs = []string{
	"Led", "Designed", "Implemented", "Spearheaded", "Managed",
	"Optimized", "Increased", "Reduced", "Improved", "Delivered",
	"Built", "Coordinated", "Developed", "Negotiated", "Streamlined",
	"Drove", "Facilitated", "Executed", "Mentored", "Launched",
}

var metricNames = []string{
	"revenue", "efficiency", "customer satisfaction", "cost",
	"uptime", "retention", "conversion rate",
}

var improvementValues = []int{8, 10, 12, 15, 20, 25, 30}

// roleFlavors maps role-family keywords to an extra candidate sentence.
// Matching is substring-based and case-insensitive.
var roleFlavors = []struct {
	keywords []string
	sentence string
}{
	{
		keywords: []string{"sales", "account", "business"},
		sentence: "Built strong client relationships and expanded accounts through consultative selling.",
	},
	{
		keywords: []string{"engineer", "developer", "dev", "software"},
		sentence: "Improved system reliability and deployment velocity through automation and testing.",
	},
	{
		keywords: []string{"product", "pm", "product manager"},
		sentence: "Prioritised features and worked cross-functionally to launch product improvements.",
	},
}

// Generator expands descriptions into bullet lists. The zero value is not
// usable; construct with New or NewWithSource.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator backed by a time-seeded random source. Output is
// intentionally non-deterministic across calls.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a generator backed by the given source, so tests can
// supply a deterministic seed.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate expands description into count bullets. Role and company are only
// used for tone matching and interpolation and may be empty. An empty or
// whitespace-only description yields nil regardless of count; otherwise
// exactly count non-empty sentences are returned, each ending in a period.
func (g *Generator) Generate(description, role, company string, count int) []string {
	if strings.TrimSpace(description) == "" || count <= 0 {
		return nil
	}

	desc := strings.Join(strings.Fields(description), " ")

	g.mu.Lock()
	defer g.mu.Unlock()

	metric := metricNames[g.rng.Intn(len(metricNames))]
	value := improvementValues[g.rng.Intn(len(improvementValues))]

	companySentence := fmt.Sprintf("%s %s.", g.verb(), desc)
	if company != "" {
		companySentence = fmt.Sprintf("%s %s at %s.", g.verb(), desc, company)
	}

	candidates := []string{
		fmt.Sprintf("%s %s, achieving ~%d%% improvement in %s.", g.verb(), desc, value, metric),
		companySentence,
		fmt.Sprintf("%s %s by focusing on stakeholder needs and measurable KPIs.", g.verb(), desc),
	}

	roleLower := strings.ToLower(role)
	for _, flavor := range roleFlavors {
		for _, kw := range flavor.keywords {
			if strings.Contains(roleLower, kw) {
				candidates = append(candidates, flavor.sentence)
				break
			}
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	bullets := make([]string, 0, count)
	for _, c := range candidates {
		if len(bullets) >= count {
			break
		}
		bullets = append(bullets, ensurePeriod(c))
	}
	for len(bullets) < count {
		bullets = append(bullets, fmt.Sprintf("%s %s.", g.verb(), desc))
	}

	return bullets
}

func (g *Generator) verb() string {
	return actionVerbs[g.rng.Intn(len(actionVerbs))]
}

func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

// PunctuateLines turns the non-blank lines of raw text into bullets without
// any generation, each guaranteed terminal punctuation.
func PunctuateLines(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		bullets = append(bullets, ensurePeriod(line))
	}
	return bullets
}
