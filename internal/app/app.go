// Package app wires the command pipeline: generate a command while the
// progress indicator spins, then print, copy and run it as requested.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arin/please/internal/clipboard"
	"github.com/arin/please/internal/executor"
	"github.com/arin/please/internal/ui"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Invocation is the resolved input for one run.
type Invocation struct {
	Prompt   string
	Platform string
	Copy     bool
	Run      bool
}

// Generator turns a prompt into a command for a platform.
type Generator interface {
	Generate(ctx context.Context, prompt, platform string) (string, error)
}

// Runner executes a command line.
type Runner interface {
	Run(ctx context.Context, command string) (executor.Result, error)
}

// Outcome records what each step of a run produced.
type Outcome struct {
	Command     string
	GenerateErr error
	CopyErr     error
	Exec        *executor.Result
	ExecErr     error
}

// App holds the collaborators of the pipeline.
type App struct {
	Generator Generator
	Indicator ui.Indicator
	Clipboard clipboard.Writer
	Runner    Runner
	Out       io.Writer
	ErrOut    io.Writer
	Log       logrus.FieldLogger
}

// Run executes one invocation. Failures are reported to the user and
// recorded in the Outcome; none of them abort the steps that follow.
func (a *App) Run(ctx context.Context, inv Invocation) Outcome {
	fmt.Fprintf(a.Out, "Prompt: `%s`\n", inv.Prompt)
	fmt.Fprintf(a.Out, "Target platform: `%s`\n", inv.Platform)

	command, err := a.generate(ctx, inv)
	if err != nil {
		a.Log.WithError(err).Debug("generation failed")
		red := color.New(color.FgRed)
		red.Fprintf(a.ErrOut, "Error: %v\n", err)
		return Outcome{GenerateErr: err}
	}

	out := Outcome{Command: command}
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprint(a.Out, "Generated command: ")
	cyan.Fprintf(a.Out, "`%s`\n", command)

	if inv.Copy {
		out.CopyErr = a.copy(command)
	}
	if inv.Run {
		out.Exec, out.ExecErr = a.run(ctx, command)
	}
	return out
}

// generate calls the generator with the indicator animating, and returns
// only after the indicator has been stopped.
func (a *App) generate(ctx context.Context, inv Invocation) (string, error) {
	animCtx, cancel := context.WithCancel(ctx)
	done := ui.Animate(animCtx, a.Indicator)

	command, err := a.Generator.Generate(ctx, inv.Prompt, inv.Platform)

	cancel()
	<-done
	return command, err
}

func (a *App) copy(command string) error {
	fmt.Fprintf(a.Out, "Copying `%s` to clipboard...\n", command)
	if err := a.Clipboard.WriteAll(command); err != nil {
		red := color.New(color.FgRed)
		red.Fprintf(a.ErrOut, "Error: %v\n", err)
		return err
	}
	green := color.New(color.FgGreen)
	green.Fprintln(a.Out, "Command copied successfully!")
	return nil
}

func (a *App) run(ctx context.Context, command string) (*executor.Result, error) {
	fmt.Fprintf(a.Out, "Running `%s`...\n", command)

	if found := executor.ShellSyntax(command); len(found) > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(a.ErrOut, "Note: %s will be passed to the program literally, not interpreted by a shell.\n", strings.Join(found, ", "))
	}

	res, err := a.Runner.Run(ctx, command)
	if err != nil {
		a.Log.WithError(err).Debug("execution failed")
		red := color.New(color.FgRed)
		red.Fprintf(a.ErrOut, "Error: %v\n", err)
		return nil, err
	}

	switch {
	case res.Success:
		green := color.New(color.FgGreen)
		green.Fprintln(a.Out, "Command executed successfully!")
	case res.Code < 0:
		red := color.New(color.FgRed)
		red.Fprintln(a.Out, "Command was terminated by a signal")
	default:
		red := color.New(color.FgRed)
		red.Fprintf(a.Out, "Command failed with exit code: %d\n", res.Code)
	}
	return &res, nil
}
