package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/git"
	"github.com/opsline/cutover/internal/history"
	"github.com/opsline/cutover/internal/release"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf    config.Config
	Git     git.Git
	Release *release.Service
	History history.Service
}

const longHelp = `cutover cuts a release from the staging branch or a patch branch:
it computes the next semantic version and changelog with standard-version,
rewrites vX.Y.Z tokens in the tracked project files, commits, merges into
production, and tags the release.

Release types:
  preview     compute the prospective version and changelog, then discard
  prerelease  cut a prerelease version
  first       generate the changelog without bumping the version
  patch       cut a patch release (default)
  minor       cut a minor release
  major       cut a major release
  X.Y.Z       use the literal version instead of computing one`

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:   "cutover [release-type]",
		Short: "Semantic-version release tagging for a staging/production branch flow",
		Long:  longHelp,
		Args:  cobra.MaximumNArgs(1),
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""

			if len(args) == 1 {
				arg = args[0]
			}

			if arg == "help" {
				return cmd.Help()
			}

			// cobra prints the error and usage text on the way out
			releaseType, explicitVersion, err := release.ParseType(arg)

			if err != nil {
				return err
			}

			sess, err := release.NewSession(
				props.Git,
				props.Conf,
				releaseType,
				explicitVersion,
			)

			if err != nil {
				return err
			}

			return props.Release.Run(sess)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.AddCommand(version())
	cmd.AddCommand(historyCmd(props))
	cmd.AddCommand(initConf(props))
	cmd.AddCommand(clear())

	return cmd
}
