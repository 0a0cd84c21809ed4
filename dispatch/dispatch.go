// Package dispatch executes submitted command lines and returns the
// envelope the session renders: output lines, an exit flag and an
// error flag. Slow work (AI pass-through) is returned as an Async
// continuation so the session loop is never blocked.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kestrelsec/cybuddy/ai"
	"github.com/kestrelsec/cybuddy/intent"
	"github.com/kestrelsec/cybuddy/knowledge"
	"github.com/kestrelsec/cybuddy/todo"
	"github.com/kestrelsec/cybuddy/transcript"
)

// Result is the dispatch envelope. When Async is non-nil the caller
// should run it off the loop and append its lines on completion.
type Result struct {
	Lines   []transcript.Line
	IsExit  bool
	IsError bool
	Async   func(ctx context.Context) []transcript.Line
}

// Dispatcher routes command lines to the knowledge base, intent
// classifier and optional AI provider. Not safe for concurrent use.
type Dispatcher struct {
	kb       *knowledge.Base
	provider ai.Provider
	todos    *todo.Store
	log      *slog.Logger

	lastQuiz *knowledge.Quiz
}

// New builds a dispatcher. provider and todos may be nil (AI disabled,
// no persisted task list).
func New(kb *knowledge.Base, provider ai.Provider, todos *todo.Store, log *slog.Logger) *Dispatcher {
	return &Dispatcher{kb: kb, provider: provider, todos: todos, log: log}
}

// Execute runs one command line. It never panics and never blocks on
// the network.
func (d *Dispatcher) Execute(line string) Result {
	text := strings.TrimSpace(line)
	if text == "" {
		return Result{}
	}

	lower := strings.ToLower(text)
	switch lower {
	case "exit", "quit", "/exit", "/quit", "q":
		return Result{Lines: []transcript.Line{dim("bye")}, IsExit: true}
	case "help", "/help", "?":
		return Result{Lines: helpLines()}
	case "answer", "/answer":
		return d.revealAnswer()
	case "topics", "/topics":
		return d.listTopics()
	}

	if strings.HasPrefix(text, "/") {
		return d.slashCommand(text)
	}

	return d.naturalLanguage(text)
}

func (d *Dispatcher) slashCommand(text string) Result {
	cmd, arg, _ := strings.Cut(text[1:], " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "explain":
		return d.explain(arg)
	case "tip", "tips":
		return d.tips(arg)
	case "plan":
		return d.plan(arg)
	case "assist":
		return d.assist(arg)
	case "report":
		return d.report(arg)
	case "quiz":
		return d.quiz(arg)
	case "checklist":
		return d.checklist(arg)
	case "todo":
		return d.handleTodo(arg)
	case "run":
		return d.reviewRun(arg)
	case "ai":
		return d.askAI(arg)
	}

	d.log.Info("unknown slash command", "command", cmd)
	return Result{
		Lines: []transcript.Line{
			errLine(fmt.Sprintf("unknown command /%s", cmd)),
			dim("try /help"),
		},
		IsError: true,
	}
}

func (d *Dispatcher) naturalLanguage(text string) Result {
	in := intent.Classify(text)
	switch in.Action {
	case intent.ActionExplain:
		return d.explain(in.Topic)
	case intent.ActionTip:
		return d.tips(in.Topic)
	case intent.ActionPlan:
		return d.plan(in.Topic)
	case intent.ActionAssist:
		return d.assist(in.Topic)
	case intent.ActionReport:
		return d.report(in.Topic)
	case intent.ActionQuiz:
		return d.quiz(in.Topic)
	}

	lines := []transcript.Line{
		errLine(fmt.Sprintf("I don't understand %q", text)),
	}
	if sugg := d.kb.Suggest(text); len(sugg) > 0 {
		lines = append(lines, dim("did you mean: "+strings.Join(sugg, ", ")))
	}
	lines = append(lines, dim("try /help for the command list"))
	return Result{Lines: lines, IsError: true}
}

func (d *Dispatcher) explain(topic string) Result {
	if topic == "" {
		return usage("/explain <tool or technique>")
	}
	e, ok := d.kb.Explain(topic)
	if !ok {
		return d.notFound(topic)
	}

	lines := []transcript.Line{
		title(e.Name),
		plain(e.Summary),
		blank(),
	}
	for _, u := range e.Usage {
		lines = append(lines, command("  "+u))
	}
	if e.Example != "" {
		lines = append(lines, blank(), accent("example: "+e.Example))
	}
	for _, tip := range e.Tips {
		lines = append(lines, success("  tip: "+tip))
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) tips(topic string) Result {
	if topic == "" {
		tip := d.kb.RandomTip()
		if tip == "" {
			return d.notFound("tips")
		}
		return Result{Lines: []transcript.Line{success("tip: " + tip)}}
	}
	tips, ok := d.kb.Tips(topic)
	if !ok {
		return d.notFound(topic)
	}
	lines := []transcript.Line{title("tips: " + topic)}
	for _, t := range tips {
		lines = append(lines, success("  • "+t))
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) plan(goal string) Result {
	if goal == "" {
		return usage("/plan <goal, e.g. web application>")
	}
	steps, ok := d.kb.Plan(goal)
	if !ok {
		return d.notFound(goal)
	}
	lines := []transcript.Line{title("plan: " + goal)}
	for _, s := range steps {
		lines = append(lines, plain("  "+s))
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) assist(problem string) Result {
	if problem == "" {
		return usage("/assist <problem, e.g. shell dies>")
	}
	steps, ok := d.kb.Assist(problem)
	if !ok {
		return d.notFound(problem)
	}
	lines := []transcript.Line{title("assist: " + problem)}
	for _, s := range steps {
		lines = append(lines, plain("  • "+s))
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) report(kind string) Result {
	if kind == "" {
		return usage("/report <kind: vulnerability, pentest, incident>")
	}
	tmpl, ok := d.kb.Report(kind)
	if !ok {
		return d.notFound(kind)
	}
	lines := make([]transcript.Line, 0, len(tmpl))
	for _, l := range tmpl {
		if strings.HasPrefix(l, "#") {
			lines = append(lines, title(l))
		} else {
			lines = append(lines, plain(l))
		}
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) quiz(topic string) Result {
	var q knowledge.Quiz
	if topic == "" {
		var ok bool
		q, ok = d.kb.RandomQuiz()
		if !ok {
			return d.notFound("quiz")
		}
	} else {
		qs, ok := d.kb.Quizzes(topic)
		if !ok || len(qs) == 0 {
			return d.notFound(topic)
		}
		q = qs[0]
		if d.lastQuiz != nil {
			// Rotate within the topic so repeated asks vary
			for i, c := range qs {
				if c.Question == d.lastQuiz.Question {
					q = qs[(i+1)%len(qs)]
					break
				}
			}
		}
	}
	d.lastQuiz = &q
	return Result{Lines: []transcript.Line{
		title("quiz"),
		plain("  " + q.Question),
		dim("  type 'answer' to reveal"),
	}}
}

func (d *Dispatcher) revealAnswer() Result {
	if d.lastQuiz == nil {
		return Result{
			Lines:   []transcript.Line{errLine("no quiz pending, ask for one with /quiz")},
			IsError: true,
		}
	}
	q := d.lastQuiz
	d.lastQuiz = nil
	return Result{Lines: []transcript.Line{
		success("answer: " + q.Answer),
	}}
}

func (d *Dispatcher) checklist(phase string) Result {
	if phase == "" {
		return usage("/checklist <phase: recon, web, post exploitation, reporting>")
	}
	items, ok := d.kb.Checklist(phase)
	if !ok {
		return d.notFound(phase)
	}
	lines := []transcript.Line{title("checklist: " + phase)}
	for _, item := range items {
		lines = append(lines, plain("  "+item))
	}
	return Result{Lines: lines}
}

func (d *Dispatcher) askAI(question string) Result {
	if question == "" {
		return usage("/ai <question>")
	}
	if d.provider == nil {
		return Result{
			Lines: []transcript.Line{
				errLine("no AI provider configured"),
				dim("set [ai] provider in config.toml and export the matching API key"),
			},
			IsError: true,
		}
	}

	provider := d.provider
	log := d.log
	return Result{
		Lines: []transcript.Line{dim("asking " + provider.Name() + "...")},
		Async: func(ctx context.Context) []transcript.Line {
			answer, err := provider.Ask(ctx, question)
			if err != nil {
				log.Error("ai request failed", "provider", provider.Name(), "error", err)
				return []transcript.Line{errLine("ai: " + err.Error())}
			}
			var lines []transcript.Line
			for _, l := range strings.Split(strings.TrimSpace(answer), "\n") {
				lines = append(lines, plain(l))
			}
			return lines
		},
	}
}

func (d *Dispatcher) listTopics() Result {
	topics := d.kb.Topics()
	lines := []transcript.Line{title("topics")}
	lines = append(lines, plain("  "+strings.Join(topics, ", ")))
	return Result{Lines: lines}
}

func (d *Dispatcher) notFound(topic string) Result {
	lines := []transcript.Line{errLine(fmt.Sprintf("nothing found for %q", topic))}
	if sugg := d.kb.Suggest(topic); len(sugg) > 0 {
		lines = append(lines, dim("did you mean: "+strings.Join(sugg, ", ")))
	}
	return Result{Lines: lines, IsError: true}
}

func usage(text string) Result {
	return Result{Lines: []transcript.Line{dim("usage: " + text)}, IsError: true}
}

func helpLines() []transcript.Line {
	return []transcript.Line{
		title("cybuddy commands"),
		command("  /explain <topic>    tool or technique explanation"),
		command("  /tip [topic]        study tip, random without a topic"),
		command("  /plan <goal>        step-by-step approach"),
		command("  /assist <problem>   troubleshooting help"),
		command("  /report <kind>      report template"),
		command("  /quiz [topic]       practice question, 'answer' reveals"),
		command("  /checklist <phase>  phase checklist"),
		command("  /todo               task list: add <text>, done <n>, clear"),
		command("  /run <tool> <args>  dry-run safety review of a command"),
		command("  /topics             list known topics"),
		command("  /ai <question>      ask the configured AI provider"),
		command("  exit                leave"),
		blank(),
		dim("plain questions work too: \"how do I scan ports?\""),
		dim("keys: F2 transcript pager, Esc clear input, arrows history"),
	}
}

func plain(s string) transcript.Line   { return transcript.Line{Kind: transcript.KindPlain, Text: s} }
func title(s string) transcript.Line   { return transcript.Line{Kind: transcript.KindTitle, Text: s} }
func command(s string) transcript.Line { return transcript.Line{Kind: transcript.KindCommand, Text: s} }
func success(s string) transcript.Line { return transcript.Line{Kind: transcript.KindSuccess, Text: s} }
func dim(s string) transcript.Line     { return transcript.Line{Kind: transcript.KindDim, Text: s} }
func accent(s string) transcript.Line  { return transcript.Line{Kind: transcript.KindAccent, Text: s} }
func errLine(s string) transcript.Line { return transcript.Line{Kind: transcript.KindError, Text: s} }
func blank() transcript.Line           { return transcript.Line{} }

func warnLine(s string) transcript.Line {
	return transcript.Line{Kind: transcript.KindWarning, Text: s}
}
