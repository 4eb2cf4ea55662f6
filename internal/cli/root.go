// Package cli implements the humanid command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/humanids/pkg/humanid"
	"github.com/dmitrymomot/humanids/pkg/logger"
	"github.com/dmitrymomot/humanids/pkg/requestid"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = "dev"

// app is shared by the root command and its subcommands.
type app struct {
	cfg       Config
	verbose   int
	logFormat string
	log       *slog.Logger
}

type generateFlags struct {
	separator  string
	capitalize bool
	adverb     bool
	adjectives uint
	count      int
	completion string
}

// Execute loads configuration from the environment and runs the command line.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cmd := NewRootCmd(cfg)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree with flag defaults taken from cfg.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "humanid",
		Short: "Generate human-readable identifiers",
		Long: `humanid prints memorable identifiers composed of adjectives, a noun,
a verb and optionally an adverb, e.g. "quick-fox-jumps".`,
		Example: `  humanid
  humanid -c -s _ -n 2 -a
  humanid --count 5 --separator ""
  humanid --completion zsh > _humanid`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := logger.ParseFormat(a.logFormat)
			if err != nil {
				return err
			}
			a.log = logger.New(
				logger.WithVerbosity(a.verbose),
				logger.WithFormat(format),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			logger.SetAsDefault(a.log)
			a.log.Log(cmd.Context(), logger.LevelTrace, "configuration loaded",
				slog.String("command", cmd.Name()),
				slog.Any("http", a.cfg.HTTP),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.completion != "" {
				return writeCompletion(cmd.Root(), flags.completion, cmd.OutOrStdout())
			}
			return a.generate(cmd, flags)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "Verbose output (-v debug, -vv trace)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	f := cmd.Flags()
	f.StringVarP(&flags.separator, "separator", "s", cfg.Separator, "The separator to use between words")
	f.BoolVarP(&flags.capitalize, "capitalize", "c", cfg.Capitalize, "Capitalize each word")
	f.BoolVarP(&flags.adverb, "adverb", "a", cfg.Adverb, "Add an adverb")
	f.UintVarP(&flags.adjectives, "num-adjectives", "n", cfg.Adjectives, "The number of adjectives to use")
	f.IntVar(&flags.count, "count", 1, "How many identifiers to print, one per line")
	f.StringVar(&flags.completion, "completion", "", "Print a shell completion script (bash, zsh, fish, powershell)")
	_ = cmd.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(supportedShells, cobra.ShellCompDirectiveNoFileComp))

	cmd.AddCommand(newLexiconCmd())
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newManCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) generate(cmd *cobra.Command, flags generateFlags) error {
	if flags.count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, flags.count)
	}

	opts, err := humanid.NewBuilder().
		Separator(flags.separator).
		Capitalize(flags.capitalize).
		AddAdverb(flags.adverb).
		AdjectiveCount(flags.adjectives).
		Build()
	if err != nil {
		return err
	}

	start := time.Now()
	out := cmd.OutOrStdout()
	for range flags.count {
		if _, err := fmt.Fprintln(out, humanid.Generate(opts)); err != nil {
			return err
		}
	}

	a.log.DebugContext(cmd.Context(), "generated identifiers",
		logger.Count(flags.count),
		logger.Options(opts),
		logger.Duration(time.Since(start)),
	)
	return nil
}
