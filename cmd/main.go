package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Trail-App/internal/app"
	"Trail-App/internal/config"
	"Trail-App/internal/domain/model"
	"Trail-App/internal/logging"
)

var (
	cfg         config.Config
	logger      *zap.Logger
	application *app.App

	// trails フラグ
	trailQuery model.TrailQuery
)

var rootCmd = &cobra.Command{
	Use:           "trail-app",
	Short:         "Browse and search hiking trail data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger, err = logging.NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		application, err = app.New(cmd.Context(), cfg, logger)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: application.Router,
		}

		fmt.Printf("Trail-App server starting on %s (source: %s)...\n", cfg.Addr(), cfg.Source)
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List active cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(application.Trails.ListCities(cmd.Context()))
	},
}

var trailsCmd = &cobra.Command{
	Use:   "trails",
	Short: "List trails of a city, filtered by type and sorted by a field",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(application.Trails.ListTrails(cmd.Context(), trailQuery))
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <id>",
	Short: "Look up a trail by id (absence is not an error)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid trail id %q", args[0])
		}
		return printResult(application.Trails.GetTrailLenient(cmd.Context(), id))
	},
}

var trailCmd = &cobra.Command{
	Use:   "trail <code>",
	Short: "Fetch a trail by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(application.Trails.GetTrailStrict(cmd.Context(), args[0]))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search trails whose name contains the term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(application.Trails.SearchTrails(cmd.Context(), args[0]))
	},
}

var detailCmd = &cobra.Command{
	Use:   "detail <code>",
	Short: "Fetch the detail record of a trail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(application.Trails.GetTrailDetail(cmd.Context(), args[0]))
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a trail by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid trail id %q", args[0])
		}
		return printResult(application.Trails.DeleteTrail(cmd.Context(), id))
	},
}

func init() {
	trailsCmd.Flags().StringVar(&trailQuery.CityCode, "city", "", "city code (required)")
	trailsCmd.Flags().IntVar(&trailQuery.Type, "type", model.TrailTypeHiking, "trail type")
	trailsCmd.Flags().StringVar(&trailQuery.SortField, "sort", "distance", "sort field")
	trailsCmd.Flags().StringVar(&trailQuery.Direction, "direction", model.SortAsc, `sort direction ("asc" or "desc")`)
	trailsCmd.Flags().BoolVar(&trailQuery.RoundTripOnly, "round-trip", false, "only round trips")
	_ = trailsCmd.MarkFlagRequired("city")

	rootCmd.AddCommand(serveCmd, citiesCmd, trailsCmd, lookupCmd, trailCmd, searchCmd, detailCmd, deleteCmd)
}

// printResult 結果をJSONで出力し、続けてメッセージログを出力する
func printResult(result any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	for _, message := range application.Messages.Messages() {
		fmt.Fprintln(os.Stderr, message)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
