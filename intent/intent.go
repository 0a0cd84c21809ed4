// Package intent classifies free-form input into study actions with a
// topic argument, using ordered regex patterns and keyword fallbacks.
package intent

import (
	"regexp"
	"strings"
)

// Action is the recognized study action
type Action uint8

const (
	ActionUnknown Action = iota
	ActionExplain
	ActionTip
	ActionPlan
	ActionAssist
	ActionReport
	ActionQuiz
)

func (a Action) String() string {
	switch a {
	case ActionExplain:
		return "explain"
	case ActionTip:
		return "tip"
	case ActionPlan:
		return "plan"
	case ActionAssist:
		return "assist"
	case ActionReport:
		return "report"
	case ActionQuiz:
		return "quiz"
	}
	return "unknown"
}

// Intent is the classification result. Topic holds the captured
// argument text, possibly empty.
type Intent struct {
	Action Action
	Topic  string
}

type pattern struct {
	re     *regexp.Regexp
	action Action
}

// Ordered: first match wins. Each pattern captures the topic in the
// first group.
var patterns = []pattern{
	{regexp.MustCompile(`(?i)^(?:what\s+is|what'?s|explain|describe|tell\s+me\s+about)\s+(.+?)\??$`), ActionExplain},
	{regexp.MustCompile(`(?i)^how\s+(?:do\s+i|to|can\s+i)\s+(?:use\s+)?(.+?)\??$`), ActionExplain},
	{regexp.MustCompile(`(?i)^(?:tips?|advice|tricks?)\s+(?:for|on|about)\s+(.+)$`), ActionTip},
	{regexp.MustCompile(`(?i)^(?:give\s+me\s+)?(?:a\s+)?tips?(?:\s+(?:for|on|about)\s+(.+))?$`), ActionTip},
	{regexp.MustCompile(`(?i)^(?:plan|roadmap|approach|methodology)\s+(?:for|to)\s+(.+)$`), ActionPlan},
	{regexp.MustCompile(`(?i)^(?:where\s+do\s+i\s+start|how\s+do\s+i\s+approach)\s+(?:with\s+|on\s+)?(.+?)\??$`), ActionPlan},
	{regexp.MustCompile(`(?i)^(?:help|assist)\s*(?:me\s+)?(?:with\s+)?(.+)$`), ActionAssist},
	// A one-word failure verb stays in the topic; the assist entries
	// are keyed that way ("shell dies")
	{regexp.MustCompile(`(?i)^(?:my|the)\s+(.+?\s+(?:fails?|dies))\??$`), ActionAssist},
	{regexp.MustCompile(`(?i)^(?:my|the)\s+(.+?)\s+(?:doesn'?t\s+work|isn'?t\s+working|keeps\s+failing)\??$`), ActionAssist},
	{regexp.MustCompile(`(?i)^(?:report|template|write\s*-?\s*up)\s+(?:for|template\s+for)?\s*(.*)$`), ActionReport},
	{regexp.MustCompile(`(?i)^(?:quiz|test)\s*(?:me)?\s*(?:on|about)?\s*(.*)$`), ActionQuiz},
}

// Keyword fallbacks checked when no pattern matches; the keyword is
// stripped and the remainder becomes the topic.
var keywords = []struct {
	word   string
	action Action
}{
	{"explain", ActionExplain},
	{"tip", ActionTip},
	{"tips", ActionTip},
	{"plan", ActionPlan},
	{"assist", ActionAssist},
	{"help", ActionAssist},
	{"report", ActionReport},
	{"quiz", ActionQuiz},
}

// Classify maps free text to an intent. Unmatched text falls back to
// ActionExplain with the whole line as topic when it looks like a bare
// topic word, otherwise ActionUnknown.
func Classify(input string) Intent {
	text := strings.TrimSpace(input)
	if text == "" {
		return Intent{Action: ActionUnknown}
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		topic := ""
		if len(m) > 1 {
			topic = cleanTopic(m[1])
		}
		return Intent{Action: p.action, Topic: topic}
	}

	fields := strings.Fields(strings.ToLower(text))
	for _, kw := range keywords {
		if fields[0] == kw.word {
			return Intent{Action: kw.action, Topic: cleanTopic(strings.Join(fields[1:], " "))}
		}
	}

	// A short bare phrase reads as a lookup request
	if len(fields) <= 3 {
		return Intent{Action: ActionExplain, Topic: cleanTopic(text)}
	}

	return Intent{Action: ActionUnknown, Topic: text}
}

// cleanTopic strips filler words and punctuation from a captured topic
func cleanTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	topic = strings.Trim(topic, "?!.")
	for _, prefix := range []string{"a ", "an ", "the ", "my ", "about ", "using ", "with "} {
		lower := strings.ToLower(topic)
		if strings.HasPrefix(lower, prefix) {
			topic = topic[len(prefix):]
		}
	}
	return strings.TrimSpace(topic)
}
