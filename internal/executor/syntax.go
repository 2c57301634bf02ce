package executor

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ShellSyntax lists shell constructs in command that Run passes through
// literally instead of interpreting. The result is empty for a plain
// "program arg arg" line or for input that does not parse.
func ShellSyntax(command string) []string {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var found []string
	add := func(what string) {
		if !seen[what] {
			seen[what] = true
			found = append(found, what)
		}
	}

	if len(file.Stmts) > 1 {
		add("command list")
	}
	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.BinaryCmd:
			if n.Op == syntax.Pipe || n.Op == syntax.PipeAll {
				add("pipeline")
			} else {
				add("command list")
			}
		case *syntax.Redirect:
			add("redirection")
		case *syntax.Subshell:
			add("subshell")
		case *syntax.CmdSubst:
			add("command substitution")
		case *syntax.ParamExp:
			add("variable expansion")
		case *syntax.SglQuoted, *syntax.DblQuoted:
			add("quoting")
		case *syntax.Stmt:
			if n.Background {
				add("background job")
			}
		}
		return true
	})
	return found
}
