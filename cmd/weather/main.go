package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"ulascansenturk/weather-lookup/config"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "weather",
	Short: "Look up the current weather",
	Long: `Look up the current weather for a city, a pair of coordinates or the
configured device location, and print it the way a screen would show it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	screenFlag string
	app        *lookupApp
)

func init() {
	rootCmd.PersistentFlags().StringVar(&screenFlag, "screen", presentation.ScreenMain, "screen to display on (main or secondary)")
}

func setup(cmd *cobra.Command, args []string) error {
	if !presentation.ValidScreen(screenFlag) {
		return fmt.Errorf("unknown screen %q", screenFlag)
	}

	conf, err := config.LoadConfig()
	if err != nil {
		return err
	}

	zone, err := conf.Location()
	if err != nil {
		return err
	}

	weatherService := service.NewWeatherService(
		providers.NewOpenWeatherService(conf.OpenWeatherBaseURL, conf.OpenWeatherAPIKey, conf.OpenWeatherTimeout),
		location.NewStaticProvider(conf.LocationConfig()),
		nil,
	)

	app = newLookupApp(weatherService, zone, cmd.OutOrStdout())
	return nil
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
