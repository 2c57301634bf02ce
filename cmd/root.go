package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/arin/please/internal/app"
	"github.com/spf13/cobra"
)

var (
	copyCommand bool
	runCommand  bool
	platform    string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "please [prompt...]",
	Short: "Generate terminal commands from text prompts",
	Long: `please turns a plain-English prompt into a single terminal command
for your operating system, using an OpenAI-compatible chat API.

The API key is read from OPENAI_API_KEY, either in the environment or in a
.env file in the current directory.

Examples:
  please list all files larger than 100mb
  please --copy show disk usage
  please -r print the current git branch
  please -p windows find the process using port 8080`,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&copyCommand, "copy", "c", false, "Copy the generated command to the clipboard")
	rootCmd.Flags().BoolVarP(&runCommand, "run", "r", false, "Run the generated command")
	rootCmd.Flags().StringVarP(&platform, "platform", "p", "", "Set the target platform (operating system) the command should run on. Defaults to the current operating system")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log request details to stderr")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, c.UsageString())
	})
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the entry point called from main.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newInvocation joins the prompt words and resolves the target platform.
func newInvocation(args []string, platformFlag string) app.Invocation {
	target := platformFlag
	if target == "" {
		target = runtime.GOOS
	}
	return app.Invocation{
		Prompt:   strings.Join(args, " "),
		Platform: target,
		Copy:     copyCommand,
		Run:      runCommand,
	}
}
