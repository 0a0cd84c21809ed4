package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Action
		topic string
	}{
		{"what is nmap", ActionExplain, "nmap"},
		{"what's sqlmap?", ActionExplain, "sqlmap"},
		{"explain gobuster", ActionExplain, "gobuster"},
		{"tell me about hydra", ActionExplain, "hydra"},
		{"how do I scan ports?", ActionExplain, "scan ports"},
		{"how to use hashcat", ActionExplain, "hashcat"},
		{"tips for sql injection", ActionTip, "sql injection"},
		{"give me a tip", ActionTip, ""},
		{"plan for web application", ActionPlan, "web application"},
		{"where do I start with privilege escalation", ActionPlan, "privilege escalation"},
		{"help with connection refused", ActionAssist, "connection refused"},
		{"my shell dies", ActionAssist, "shell dies"},
		{"my exploit fails", ActionAssist, "exploit fails"},
		{"the scan keeps failing", ActionAssist, "scan"},
		{"report for pentest", ActionReport, "pentest"},
		{"quiz me on networking", ActionQuiz, "networking"},
		{"quiz", ActionQuiz, ""},
		{"nmap", ActionExplain, "nmap"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Action != tt.want {
				t.Errorf("Classify(%q).Action = %v, want %v", tt.input, got.Action, tt.want)
			}
			if got.Topic != tt.topic {
				t.Errorf("Classify(%q).Topic = %q, want %q", tt.input, got.Topic, tt.topic)
			}
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	if got := Classify("   "); got.Action != ActionUnknown {
		t.Errorf("Classify(blank) = %v, want ActionUnknown", got.Action)
	}
}

func TestClassifyLongUnknown(t *testing.T) {
	got := Classify("the quick brown fox jumps over the lazy dog")
	if got.Action != ActionUnknown {
		t.Errorf("long unmatched sentence = %v, want ActionUnknown", got.Action)
	}
}
