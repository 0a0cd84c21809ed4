package knowledge

var explainDB = map[string]Explanation{
	"nmap": {
		Name:    "nmap",
		Summary: "Network scanner for host discovery, open-port enumeration and service/version detection.",
		Usage: []string{
			"nmap -sV <target>        service/version detection",
			"nmap -sC <target>        default script scan",
			"nmap -p- <target>        all 65535 TCP ports",
			"nmap -sU <target>        UDP scan (slow, run targeted)",
		},
		Example: "nmap -sC -sV -oA initial 10.10.10.5",
		Tips: []string{
			"Start with the top 1000 ports, then follow up with -p- in the background.",
			"-oA saves normal, grepable and XML output in one run.",
		},
	},
	"masscan": {
		Name:    "masscan",
		Summary: "Very fast asynchronous port scanner for sweeping large address ranges.",
		Usage: []string{
			"masscan -p1-65535 <range> --rate 10000",
			"masscan -p80,443 10.0.0.0/8 --rate 100000",
		},
		Example: "masscan -p1-65535 10.10.10.0/24 --rate 10000 -oL ports.txt",
		Tips: []string{
			"Confirm masscan hits with nmap; masscan trades accuracy for speed.",
		},
	},
	"gobuster": {
		Name:    "gobuster",
		Summary: "Brute-forcer for web paths, DNS subdomains and virtual hosts using wordlists.",
		Usage: []string{
			"gobuster dir -u <url> -w <wordlist>",
			"gobuster dns -d <domain> -w <wordlist>",
			"gobuster vhost -u <url> -w <wordlist>",
		},
		Example: "gobuster dir -u http://10.10.10.5 -w /usr/share/wordlists/dirb/common.txt -x php,txt",
		Tips: []string{
			"Add -x extensions matching the stack you fingerprinted.",
			"Watch for wildcard responses and use --exclude-length to filter them.",
		},
	},
	"ffuf": {
		Name:    "ffuf",
		Summary: "Fast web fuzzer; the FUZZ keyword marks the injection point in any part of the request.",
		Usage: []string{
			"ffuf -u http://<host>/FUZZ -w <wordlist>",
			"ffuf -u http://FUZZ.<domain> -w subdomains.txt",
			"ffuf -u http://<host>/login -X POST -d 'user=FUZZ' -w users.txt",
		},
		Example: "ffuf -u http://10.10.10.5/FUZZ -w common.txt -mc 200,301,403",
		Tips: []string{
			"Filter noise with -fs (size) or -fw (word count) instead of relying on status codes.",
		},
	},
	"sqlmap": {
		Name:    "sqlmap",
		Summary: "Automated SQL injection discovery and exploitation tool.",
		Usage: []string{
			"sqlmap -u '<url with param>' --batch",
			"sqlmap -r request.txt --level 3 --risk 2",
			"sqlmap -u <url> --dbs / --tables / --dump",
		},
		Example: "sqlmap -r login.req --batch --dbs",
		Tips: []string{
			"Capture the request in Burp and feed it with -r; it preserves headers and cookies.",
			"Raise --level and --risk only after the default pass finds nothing.",
		},
	},
	"hydra": {
		Name:    "hydra",
		Summary: "Online password brute-forcer supporting many network protocols.",
		Usage: []string{
			"hydra -l <user> -P <wordlist> <target> ssh",
			"hydra -L users.txt -P pass.txt ftp://<target>",
			"hydra -l admin -P rockyou.txt <target> http-post-form '/login:user=^USER^&pass=^PASS^:F=invalid'",
		},
		Example: "hydra -l admin -P rockyou.txt 10.10.10.5 ssh -t 4",
		Tips: []string{
			"Keep -t low against ssh; lockouts and rate limits bite fast.",
		},
	},
	"john": {
		Name:    "john",
		Summary: "John the Ripper, offline password hash cracker with format auto-detection.",
		Usage: []string{
			"john --wordlist=<list> hashes.txt",
			"john --format=<fmt> hashes.txt",
			"john --show hashes.txt",
		},
		Example: "john --wordlist=rockyou.txt --format=sha512crypt shadow.txt",
		Tips: []string{
			"Use the *2john helpers (ssh2john, zip2john) to convert files into crackable hashes.",
		},
	},
	"hashcat": {
		Name:    "hashcat",
		Summary: "GPU-accelerated hash cracker; mode numbers select the hash algorithm.",
		Usage: []string{
			"hashcat -m <mode> -a 0 hashes.txt <wordlist>",
			"hashcat -m <mode> -a 3 hashes.txt ?a?a?a?a?a?a",
			"hashcat --show -m <mode> hashes.txt",
		},
		Example: "hashcat -m 1000 -a 0 ntlm.txt rockyou.txt -r best64.rule",
		Tips: []string{
			"Find the mode with 'hashcat --example-hashes | grep -i <name>'.",
			"Rules multiply a small wordlist; try best64.rule before bigger lists.",
		},
	},
	"netcat": {
		Name:    "netcat",
		Summary: "TCP/UDP swiss army knife: connect, listen, transfer files, catch shells.",
		Usage: []string{
			"nc -lvnp <port>          listener",
			"nc <host> <port>         client connect",
			"nc -zv <host> 1-1024     quick port check",
		},
		Example: "nc -lvnp 4444",
		Tips: []string{
			"rlwrap nc adds history and arrow keys to a raw listener.",
			"Upgrade shells: python3 -c 'import pty;pty.spawn(\"/bin/bash\")'",
		},
	},
	"wireshark": {
		Name:    "wireshark",
		Summary: "Graphical packet analyzer with deep protocol dissection and display filters.",
		Usage: []string{
			"display filter: http.request.method == \"POST\"",
			"display filter: tcp.port == 445 && smb2",
			"follow stream: right-click packet, Follow, TCP Stream",
		},
		Example: "wireshark -r capture.pcap -Y 'ftp.request.command == \"PASS\"'",
		Tips: []string{
			"Capture filters (BPF) cut file size; display filters refine after the fact.",
		},
	},
	"tcpdump": {
		Name:    "tcpdump",
		Summary: "Command-line packet capture using BPF filter expressions.",
		Usage: []string{
			"tcpdump -i <iface> -w out.pcap",
			"tcpdump -i any port 80 -A",
			"tcpdump -r out.pcap host 10.10.10.5",
		},
		Example: "tcpdump -i eth0 -w capture.pcap port not 22",
		Tips: []string{
			"Exclude your own ssh session from the capture or the file snowballs.",
		},
	},
	"burp suite": {
		Name:    "burp suite",
		Summary: "Intercepting web proxy for inspecting, modifying and replaying HTTP traffic.",
		Usage: []string{
			"Proxy: intercept and edit requests in flight",
			"Repeater: replay one request with manual edits",
			"Intruder: positional payload fuzzing",
		},
		Example: "Send the login request to Repeater and probe each parameter by hand.",
		Tips: []string{
			"Scope the target first so the proxy history stays readable.",
		},
	},
	"metasploit": {
		Name:    "metasploit",
		Summary: "Exploitation framework bundling exploits, payloads and post modules.",
		Usage: []string{
			"msfconsole; search <service>",
			"use <module>; show options; set RHOSTS <target>",
			"run / exploit; sessions -i <id>",
		},
		Example: "use exploit/multi/handler; set payload linux/x64/meterpreter/reverse_tcp",
		Tips: []string{
			"Read the module source before firing anything marked less than excellent rank.",
		},
	},
	"nikto": {
		Name:    "nikto",
		Summary: "Web server scanner for dangerous files, outdated software and misconfigurations.",
		Usage: []string{
			"nikto -h http://<target>",
			"nikto -h <target> -p 8080,8443",
		},
		Example: "nikto -h http://10.10.10.5 -o nikto.txt",
		Tips: []string{
			"Nikto is loud; never point it at anything out of scope.",
		},
	},
	"enum4linux": {
		Name:    "enum4linux",
		Summary: "SMB/NetBIOS enumeration wrapper pulling users, shares and policies from Windows hosts.",
		Usage: []string{
			"enum4linux -a <target>",
			"enum4linux -U <target>    users only",
		},
		Example: "enum4linux -a 10.10.10.5 | tee enum4linux.txt",
		Tips: []string{
			"Null sessions still work on old domain controllers; always try it early.",
		},
	},
}

var tipDB = map[string][]string{
	"sql injection": {
		"Probe with a lone single quote first; an error page is your strongest signal.",
		"Try boolean pairs (' AND 1=1-- vs ' AND 1=2--) before reaching for sqlmap.",
		"UNION column counts come from ORDER BY n until it errors.",
		"Blind injection? Measure response time with SLEEP/WAITFOR payloads.",
	},
	"xss": {
		"Test reflection with a unique harmless string before any script payload.",
		"Check every sink: URL params, form fields, headers, and stored profile fields.",
		"When <script> is filtered, try event handlers: <img src=x onerror=alert(1)>.",
	},
	"enumeration": {
		"Enumerate more when stuck; the answer is almost always another service or vhost.",
		"Always grab service banners; versions drive your exploit search.",
		"Check UDP top ports; SNMP (161) alone can hand over the whole box.",
	},
	"privilege escalation": {
		"Run linpeas/winpeas early but read the output; the tool only highlights.",
		"sudo -l is the first command after any Linux foothold.",
		"Look for SUID binaries against GTFOBins: find / -perm -4000 2>/dev/null.",
		"Check cron jobs and writable service files before kernel exploits.",
	},
	"password cracking": {
		"Always try rockyou.txt with best64 rules before anything exotic.",
		"Identify the hash format first; wasted modes burn GPU hours.",
	},
	"recon": {
		"Passive first: certificate transparency, search engines and DNS history cost the target nothing.",
		"Track every found hostname; scope grows from names, not addresses.",
	},
	"web": {
		"Read robots.txt and sitemap.xml before fuzzing a single path.",
		"Fingerprint the stack (headers, cookies, error pages) and tailor wordlists to it.",
	},
	"reporting": {
		"Take screenshots as you go; rebuilding evidence after the fact wastes hours.",
		"Rate findings by business impact, not just CVSS.",
	},
}

var assistDB = map[string][]string{
	"connection refused": {
		"The port is closed or a firewall resets you.",
		"Re-scan the specific port: the service may bind late or to another interface.",
		"Check whether the service listens on localhost only (ss -tlnp on the target).",
	},
	"permission denied": {
		"Check file ownership and mode bits (ls -l).",
		"Raw sockets and captures need root; re-run under sudo where in scope.",
		"On web targets a 403 often falls to path tricks or a different HTTP verb.",
	},
	"shell dies": {
		"Use a full TTY: python3 -c 'import pty;pty.spawn(\"/bin/bash\")'.",
		"Background it (Ctrl+Z), then 'stty raw -echo; fg' on your side.",
		"Pick a staged payload or a different port; egress filtering kills many shells.",
	},
	"hash not cracking": {
		"Confirm the hash type; one wrong mode means zero hits forever.",
		"Check for salts and the correct format with --example-hashes.",
		"Move from wordlists to rules to masks in that order.",
	},
	"scan very slow": {
		"Narrow the port range or raise -T but watch for drops.",
		"UDP scans are inherently slow; target the top 20 ports only.",
		"Run masscan for breadth, nmap for depth on what it finds.",
	},
	"wordlist not working": {
		"Match the wordlist to the target stack; common.txt misses framework routes.",
		"Add extensions (-x or FUZZ.ext) for the language you fingerprinted.",
		"Wildcard responses drown hits; filter by response size.",
	},
}

var reportDB = map[string][]string{
	"vulnerability": {
		"# Vulnerability Report",
		"",
		"## Summary",
		"One paragraph: what is vulnerable, where, and the business impact.",
		"",
		"## Severity",
		"Rating with justification (exploitability x impact).",
		"",
		"## Reproduction Steps",
		"1. Numbered, exact commands and payloads.",
		"",
		"## Evidence",
		"Screenshots, request/response excerpts.",
		"",
		"## Remediation",
		"Concrete fix, plus compensating controls if the fix is slow.",
	},
	"pentest": {
		"# Penetration Test Report",
		"",
		"## Executive Summary",
		"Non-technical overview of risk posture and headline findings.",
		"",
		"## Scope & Methodology",
		"Targets, window, rules of engagement, approach.",
		"",
		"## Findings",
		"Per finding: severity, description, evidence, remediation.",
		"",
		"## Attack Narrative",
		"Chronological path from initial access to final impact.",
		"",
		"## Appendix",
		"Tool output, hashes cracked, full host list.",
	},
	"incident": {
		"# Incident Report",
		"",
		"## Timeline",
		"UTC timestamps from first indicator to containment.",
		"",
		"## Impact Assessment",
		"Systems and data affected, confidence levels.",
		"",
		"## Root Cause",
		"Initial vector and contributing control failures.",
		"",
		"## Lessons Learned",
		"Detection gaps and concrete follow-up actions.",
	},
}

var quizDB = map[string][]Quiz{
	"networking": {
		{Question: "Which nmap flag enables service version detection?", Answer: "-sV"},
		{Question: "What port does SMB use over TCP?", Answer: "445"},
		{Question: "Which protocol does port 161/udp carry?", Answer: "SNMP"},
		{Question: "What does the TCP SYN scan send to each port?", Answer: "A SYN packet, never completing the handshake (-sS)"},
	},
	"web": {
		{Question: "Which HTTP header carries the session cookie to the server?", Answer: "Cookie"},
		{Question: "What payload keyword marks ffuf's injection point?", Answer: "FUZZ"},
		{Question: "Which SQL clause reveals the column count for a UNION injection?", Answer: "ORDER BY"},
		{Question: "What status code usually signals a path that exists but is forbidden?", Answer: "403"},
	},
	"passwords": {
		{Question: "What hashcat mode cracks NTLM?", Answer: "1000"},
		{Question: "Which john helper converts an SSH key for cracking?", Answer: "ssh2john"},
		{Question: "What wordlist is the conventional first try?", Answer: "rockyou.txt"},
	},
	"linux": {
		{Question: "Which command lists allowed sudo commands for the current user?", Answer: "sudo -l"},
		{Question: "What find expression lists SUID binaries?", Answer: "find / -perm -4000 2>/dev/null"},
		{Question: "Which python one-liner spawns a proper PTY?", Answer: "python3 -c 'import pty;pty.spawn(\"/bin/bash\")'"},
	},
}

var planDB = map[string][]string{
	"web application": {
		"1. Map the application: spider, robots.txt, sitemap, JS files.",
		"2. Fingerprint the stack and tailor wordlists.",
		"3. Fuzz paths and parameters (ffuf/gobuster).",
		"4. Test auth flows: default creds, lockout, session handling.",
		"5. Probe inputs for injection (SQLi, XSS, SSTI, command).",
		"6. Review access control: IDOR, forced browsing, verb tampering.",
		"7. Document as you go; every finding needs a reproduction.",
	},
	"network": {
		"1. Passive recon: DNS, certificates, public records.",
		"2. Host discovery sweep, then full TCP scan of live hosts.",
		"3. Targeted UDP scan of top ports.",
		"4. Enumerate every service: banners, anonymous access, known CVEs.",
		"5. Exploit the weakest credible service first.",
		"6. Post-exploitation: creds, pivoting, privilege escalation.",
	},
	"privilege escalation": {
		"1. Situational awareness: id, hostname, os version, sudo -l.",
		"2. Automated sweep: linpeas or winpeas, read it fully.",
		"3. Check SUID/capabilities against GTFOBins.",
		"4. Review cron, services and writable paths.",
		"5. Hunt credentials: configs, history files, memory.",
		"6. Kernel exploits last; they risk the box.",
	},
	"ctf": {
		"1. Read everything given: description, hints, file names.",
		"2. Enumerate broadly before going deep on one lead.",
		"3. Timebox rabbit holes to 30 minutes.",
		"4. Keep notes of every credential and endpoint found.",
		"5. When stuck, re-read your notes; the answer is usually already there.",
	},
}

var checklistDB = map[string][]string{
	"recon": {
		"[ ] Certificate transparency search for subdomains",
		"[ ] DNS records: A, MX, TXT, zone transfer attempt",
		"[ ] Google dorks and archived pages",
		"[ ] Employee names for username generation",
		"[ ] Technology fingerprint from public pages",
	},
	"web": {
		"[ ] robots.txt and sitemap.xml",
		"[ ] Directory and vhost brute force",
		"[ ] Default credentials on every login",
		"[ ] Parameter fuzzing on every dynamic page",
		"[ ] Cookie flags and session fixation",
		"[ ] Error pages for stack traces",
	},
	"post exploitation": {
		"[ ] Stabilize the shell to a full TTY",
		"[ ] sudo -l and SUID sweep",
		"[ ] Harvest configs, history and ssh keys",
		"[ ] Check internal interfaces and listening services",
		"[ ] Document every credential before using it",
	},
	"reporting": {
		"[ ] Every finding has reproduction steps",
		"[ ] Evidence screenshots captured and labeled",
		"[ ] Severity justified, not just CVSS pasted",
		"[ ] Remediation is actionable for the owner",
		"[ ] Scope and methodology section complete",
	},
}
