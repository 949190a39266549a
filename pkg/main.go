package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/yatube/server/pkg/internal"
	"github.com/yatube/server/pkg/internal/cache"
	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/http"
	"github.com/yatube/server/pkg/internal/security"
	"github.com/yatube/server/pkg/internal/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" __   __    _         _\n \\ \\ / /_ _| |_ _   _| |__   ___\n  \\ V / _` | __| | | | '_ \\ / _ \\\n   | | (_| | |_| |_| | |_) |  __/\n   |_|\\__,_|\\__|\\__,_|_.__/ \\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Yatube.Server"), pkg.AppVersion)
	fmt.Printf("The blogging and social feed service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Load the signing secret
	reader, err := security.NewTokenReader(
		viper.GetString("security.secret"),
		time.Duration(viper.GetInt("security.access_ttl"))*time.Minute,
		time.Duration(viper.GetInt("security.refresh_ttl"))*time.Minute,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when loading token signing secret.")
	}
	services.Reader = reader

	// Prepare local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
