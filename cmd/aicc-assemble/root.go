package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aicc-assembler/internal/assemble"
	"aicc-assembler/internal/config"
	"aicc-assembler/internal/logger"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg    config.Config
	logger *logger.Logger
}

func (a *app) assembler() *assemble.Assembler {
	return assemble.New(
		assemble.WithStrictRoot(a.cfg.StrictRoot),
		assemble.WithSuggestDistance(a.cfg.SuggestDistance),
		assemble.WithLogger(a.logger),
	)
}

// newRootCmd builds the command tree. Configuration comes from the
// environment first; flags override it.
func newRootCmd(args []string) *cobra.Command {
	a := &app{cfg: config.Load(), logger: logger.Nop()}

	root := &cobra.Command{
		Use:   "aicc-assemble",
		Short: "Assemble AICC course tables into a course manifest",
		Long: `aicc-assemble joins the AICC course, assignable unit, descriptor and
course structure tables, applies course-wide defaults, normalizes values and
resolves the root unit and launch URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.New(a.cfg.LogMode, a.cfg.LogVerbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.cfg.LogVerbose, "verbose", "v", a.cfg.LogVerbose, "Enable debug logging")
	flags.StringVar(&a.cfg.LogMode, "log-mode", a.cfg.LogMode, "Log output: development, production or nop")
	flags.BoolVar(&a.cfg.StrictRoot, "strict-root", a.cfg.StrictRoot, "Fail when no structure row has block ROOT")
	flags.IntVar(&a.cfg.SuggestDistance, "suggest-distance", a.cfg.SuggestDistance,
		"Edit distance for misspelled attribute key suggestions (0 disables)")
	flags.IntVarP(&a.cfg.Workers, "workers", "j", a.cfg.Workers, "Files assembled in parallel")

	root.AddCommand(newInspectCmd(a), newCheckCmd(a), newDumpCmd(a))
	root.SetArgs(args)

	return root
}
