package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/spf13/viper"

	"github.com/opsline/cutover/cli/commands"
	app_info "github.com/opsline/cutover/internal/app-info"
	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/git"
	"github.com/opsline/cutover/internal/history"
	"github.com/opsline/cutover/internal/logger"
	"github.com/opsline/cutover/internal/release"
	"github.com/opsline/cutover/internal/versioner"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRunTimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, app_info.NAME+".log")

	dbFile := path.Join(configDir, app_info.NAME+".db")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", "."+app_info.NAME+".yml")
	viper.Set("database-file", dbFile)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	if err := setRunTimeConfig(); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if f, err := os.OpenFile(
		viper.Get("log-file").(string),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	); err == nil {
		logger.GlobalSetLogFile(f)
		defer f.Close()
	}

	conf, err := config.Load(viper.Get("config-file").(string))

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	cwd, err := os.Getwd()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	gitClient := git.NewClient(cwd)

	historyRepo, err := history.NewSqliteDatabase()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	historyService := history.NewLedgerService(historyRepo)

	releaseService := release.NewService(
		cwd,
		*conf,
		gitClient,
		versioner.NewStandardVersion(cwd),
		historyService,
	)

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Conf:    *conf,
		Git:     gitClient,
		Release: releaseService,
		History: historyService,
	})

	// Allows "grepping" of command output
	cmd.SetOut(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
