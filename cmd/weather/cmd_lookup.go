package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/service"
	"ulascansenturk/weather-lookup/internal/weather"
)

var cityCmd = &cobra.Command{
	Use:   "city <name>",
	Short: "Weather for a city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.fetch(cmd.Context(), screenFlag, weather.ByCity(args[0]))
	},
}

var coordsCmd = &cobra.Command{
	Use:   "coords <lat> <lon>",
	Short: "Weather at a pair of coordinates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q", args[0])
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q", args[1])
		}
		return app.fetch(cmd.Context(), screenFlag, weather.ByCoordinates(lat, lon))
	},
}

var hereCmd = &cobra.Command{
	Use:   "here",
	Short: "Weather at the configured device location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.fetchCurrentLocation(cmd.Context(), screenFlag)
	},
}

func init() {
	rootCmd.AddCommand(cityCmd)
	rootCmd.AddCommand(coordsCmd)
	rootCmd.AddCommand(hereCmd)
}

type lookupApp struct {
	weatherService service.WeatherService
	zone           *time.Location
	out            io.Writer
	now            func() time.Time
}

func newLookupApp(weatherService service.WeatherService, zone *time.Location, out io.Writer) *lookupApp {
	return &lookupApp{
		weatherService: weatherService,
		zone:           zone,
		out:            out,
		now:            time.Now,
	}
}

func (a *lookupApp) fetch(ctx context.Context, screen string, query weather.LocationQuery) error {
	report, err := a.weatherService.Fetch(ctx, screen, query)
	return a.print(screen, report, err)
}

func (a *lookupApp) fetchCurrentLocation(ctx context.Context, screen string) error {
	report, err := a.weatherService.FetchCurrentLocation(ctx, screen)
	return a.print(screen, report, err)
}

// print writes the rendered view, or turns a failed attempt into its notice text.
func (a *lookupApp) print(screen string, report weather.Report, err error) error {
	if err != nil {
		return errors.New(presentation.ErrorNotice(err))
	}

	for _, line := range presentation.Render(screen, report, a.zone, a.now()).Lines() {
		fmt.Fprintln(a.out, line)
	}
	return nil
}
