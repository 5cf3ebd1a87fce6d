// Package cli wires the seqalign command line: cobra commands, scoring
// configuration through viper, size limits through the environment, and the
// text/JSON renderers.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
)

// Version is the command version reported by --version.
const Version = "1.0.0"

// env prefix for viper-managed settings (SEQALIGN_MATCH, SEQALIGN_GAP, ...).
const envPrefix = "SEQALIGN"

const panicBindFlags = "cli: bind flags: %v"

// app carries the per-invocation state shared by subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	logger *log.Logger
	cfg    string
}

// NewRootCommand builds the seqalign command tree writing results to out and
// diagnostics to errOut. Every call gets its own viper instance, so commands
// built in tests never share configuration.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		logger: log.New(errOut, "seqalign: ", 0),
	}

	root := &cobra.Command{
		Use:   "seqalign",
		Short: "Global pairwise alignment (Needleman-Wunsch) and dot plots",
		Long: `Align two sequences end to end under a linear gap penalty and
reconstruct one optimal alignment, or draw their pairwise dot plot.

Sequences are given as two arguments or read from a FASTA file (--in);
the first two records of the file are used.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg, "config", "", "config file with match/mismatch/gap (yaml, toml or json)")
	flags.Int("match", align.DefaultMatch, "score for a column with equal symbols")
	flags.Int("mismatch", align.DefaultMismatch, "score for a column with different symbols")
	flags.Int("gap", align.DefaultGap, "score for a column with a gap")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf(panicBindFlags, err))
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newAlignCommand(a), newDotPlotCommand(a))

	return root
}

// Execute runs the command tree against os.Args, reports any error to
// errOut and returns the process exit code. It is called by main.main().
func Execute(out, errOut io.Writer) int {
	return ExecuteArgs(out, errOut, os.Args[1:])
}

// ExecuteArgs is Execute with explicit arguments.
func ExecuteArgs(out, errOut io.Writer, args []string) int {
	cmd := NewRootCommand(out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "seqalign: %v\n", err)
		return 1
	}

	return 0
}
