package dispatch

import (
	"strings"

	"github.com/kestrelsec/cybuddy/transcript"
)

// reviewRun implements /run: a dry-run safety review of a tool
// invocation. Nothing is ever executed; the command is echoed with
// notes to copy into a lab terminal.
func (d *Dispatcher) reviewRun(arg string) Result {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return usage("/run <tool> <args>")
	}

	tool := strings.ToLower(fields[0])
	rest := strings.Join(fields[1:], " ")
	notes, tips := safetyReview(tool, rest)

	lines := []transcript.Line{title("safety review")}
	for _, n := range notes {
		lines = append(lines, warnLine("  ! " + n))
	}
	for _, tip := range tips {
		lines = append(lines, success("  tip: " + tip))
	}
	lines = append(lines,
		blank(),
		command("  "+strings.TrimSpace(tool+" "+rest)),
		dim("  not executed; run it yourself in an authorized lab"),
	)
	return Result{Lines: lines}
}

// safetyReview flags noisy or intrusive flags per tool
func safetyReview(tool, argstr string) (notes, tips []string) {
	full := " " + strings.ToLower(tool+" "+argstr) + " "

	switch tool {
	case "nmap":
		if strings.Contains(full, " -t5") || strings.Contains(full, " -t4") {
			notes = append(notes, "timing is aggressive, prefer -T2 in shared labs")
		}
		if strings.Contains(full, " --script") {
			notes = append(notes, "NSE scripts can be intrusive, review which ones run")
		}
		if strings.Contains(full, " -a ") {
			notes = append(notes, "-A bundles aggressive scans, use selectively")
		}
		if strings.Contains(full, " -p- ") {
			notes = append(notes, "full port scan is noisy and slow")
		}
		if strings.Contains(full, " -su") {
			notes = append(notes, "UDP scans are slow and noisy, target specific ports")
		}
		tips = append(tips, "common safe start: nmap -sV -Pn -T2 <target>")
	case "gobuster", "ffuf":
		if !strings.Contains(full, " -w ") {
			notes = append(notes, "provide a wordlist with -w <file>")
		}
		notes = append(notes, "respect scope, keep bruteforcing off production targets")
		tips = append(tips, "start with small wordlists to reduce noise")
	case "nikto":
		notes = append(notes, "nikto is noisy, prefer off-hours in shared labs")
		tips = append(tips, "target a specific host: nikto -h <url>")
	case "hydra", "medusa":
		notes = append(notes, "online bruteforce locks accounts, check the lockout policy first")
		tips = append(tips, "try small curated lists before big wordlists")
	case "sqlmap":
		if strings.Contains(full, " --risk=3") || strings.Contains(full, " --level=5") {
			notes = append(notes, "high risk/level payloads can modify data")
		}
		notes = append(notes, "sqlmap writes to the target database at higher risk levels")
	default:
		notes = append(notes, "unrecognized tool, review the flags before execution")
	}
	return notes, tips
}
