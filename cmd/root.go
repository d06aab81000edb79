package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/simpletype/internal/config"
	"github.com/abhisek/simpletype/internal/logging"
	"github.com/abhisek/simpletype/internal/problemgen"
)

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "simpletype",
	Short: "Typing and math practice for kids",
	Long: `Simple Type: adaptive arithmetic drills and typing practice for young learners.

Math problems get harder as the score grows and ease off when recent answers
go wrong. Typing practice can ignore case, spaces and punctuation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr (overrides SIMPLETYPE_VERBOSE)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed, 0 seeds from the clock (overrides SIMPLETYPE_SEED)")

	rootCmd.AddCommand(mathCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration from the environment, applies flag overrides
// and builds the logger.
func setup(cmd *cobra.Command) error {
	c, err := config.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		c.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	if cmd.Flags().Changed("seed") {
		c.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(c.Verbose)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

// newRand returns the random source for this run.
func newRand() problemgen.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random source", zap.Uint64("seed", seed))
	return problemgen.NewRand(seed)
}
