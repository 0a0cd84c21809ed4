// Package knowledge provides the static study content: tool
// explanations, topic tips, troubleshooting assists, report templates,
// quizzes, attack plans and checklists, with fuzzy lookup over topic
// keys.
package knowledge

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Explanation describes one tool or technique
type Explanation struct {
	Name    string
	Summary string
	Usage   []string
	Example string
	Tips    []string
}

// Quiz is one question/answer pair
type Quiz struct {
	Question string
	Answer   string
}

// Base is the in-memory knowledge base. All lookups are read-only and
// safe for concurrent use.
type Base struct {
	explains   map[string]Explanation
	tips       map[string][]string
	assists    map[string][]string
	reports    map[string][]string
	quizzes    map[string][]Quiz
	plans      map[string][]string
	checklists map[string][]string
}

// New returns the built-in knowledge base
func New() *Base {
	return &Base{
		explains:   explainDB,
		tips:       tipDB,
		assists:    assistDB,
		reports:    reportDB,
		quizzes:    quizDB,
		plans:      planDB,
		checklists: checklistDB,
	}
}

// bestMatch fuzzy-ranks query against keys and returns the closest
// key, or "" when nothing matches
func bestMatch(query string, keys []string) string {
	query = normalize(query)
	if query == "" {
		return ""
	}

	// Exact and substring matches win outright
	for _, k := range keys {
		if k == query {
			return k
		}
	}
	for _, k := range keys {
		if strings.Contains(query, k) || strings.Contains(k, query) {
			return k
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Explain returns the explanation best matching topic
func (b *Base) Explain(topic string) (Explanation, bool) {
	key := bestMatch(topic, sortedKeys(b.explains))
	if key == "" {
		return Explanation{}, false
	}
	e, ok := b.explains[key]
	return e, ok
}

// Tips returns the tip list best matching topic
func (b *Base) Tips(topic string) ([]string, bool) {
	key := bestMatch(topic, sortedKeys(b.tips))
	if key == "" {
		return nil, false
	}
	t, ok := b.tips[key]
	return t, ok
}

// RandomTip returns one tip drawn from all topics
func (b *Base) RandomTip() string {
	var all []string
	for _, tips := range b.tips {
		all = append(all, tips...)
	}
	if len(all) == 0 {
		return ""
	}
	return all[rand.Intn(len(all))]
}

// Assist returns troubleshooting guidance best matching problem
func (b *Base) Assist(problem string) ([]string, bool) {
	key := bestMatch(problem, sortedKeys(b.assists))
	if key == "" {
		return nil, false
	}
	a, ok := b.assists[key]
	return a, ok
}

// Report returns the report template best matching kind
func (b *Base) Report(kind string) ([]string, bool) {
	key := bestMatch(kind, sortedKeys(b.reports))
	if key == "" {
		return nil, false
	}
	r, ok := b.reports[key]
	return r, ok
}

// Quizzes returns the quiz set best matching topic
func (b *Base) Quizzes(topic string) ([]Quiz, bool) {
	key := bestMatch(topic, sortedKeys(b.quizzes))
	if key == "" {
		return nil, false
	}
	q, ok := b.quizzes[key]
	return q, ok
}

// RandomQuiz returns one question drawn from all topics
func (b *Base) RandomQuiz() (Quiz, bool) {
	var all []Quiz
	for _, qs := range b.quizzes {
		all = append(all, qs...)
	}
	if len(all) == 0 {
		return Quiz{}, false
	}
	return all[rand.Intn(len(all))], true
}

// Plan returns the study plan best matching goal
func (b *Base) Plan(goal string) ([]string, bool) {
	key := bestMatch(goal, sortedKeys(b.plans))
	if key == "" {
		return nil, false
	}
	p, ok := b.plans[key]
	return p, ok
}

// Checklist returns the checklist best matching phase
func (b *Base) Checklist(phase string) ([]string, bool) {
	key := bestMatch(phase, sortedKeys(b.checklists))
	if key == "" {
		return nil, false
	}
	c, ok := b.checklists[key]
	return c, ok
}

// Topics lists the explainable topic keys
func (b *Base) Topics() []string {
	return sortedKeys(b.explains)
}

// Suggest returns up to three known topics within edit distance of
// input, for "did you mean" hints on unknown queries
func (b *Base) Suggest(input string) []string {
	input = normalize(input)
	if input == "" {
		return nil
	}

	type cand struct {
		key  string
		dist int
	}
	var cands []cand
	for _, k := range b.Topics() {
		d := levenshtein.ComputeDistance(input, k)
		limit := len(k) / 2
		if limit < 2 {
			limit = 2
		}
		if d <= limit {
			cands = append(cands, cand{k, d})
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].key < cands[j].key
	})

	if len(cands) > 3 {
		cands = cands[:3]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.key
	}
	return out
}
