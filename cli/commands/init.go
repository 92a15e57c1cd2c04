package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/logger"
)

// creates and returns the "init" command
func initConf(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the active configuration to a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			configFile, ok := viper.Get("config-file").(string)

			if !ok || configFile == "" {
				return fmt.Errorf("failed to find config file path")
			}

			if _, err := os.Stat(configFile); err == nil {
				return fmt.Errorf("config file already exists: %s", configFile)
			}

			if err := config.Write(props.Conf); err != nil {
				return err
			}

			log.Info().Str("file", configFile).Msg("wrote config file")

			return nil
		},
	}

	return cmd
}
