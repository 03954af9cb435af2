package cmd

import (
	"context"
	"fmt"
	"log"

	"movie-api/internal/wire"
	"movie-api/pkg/database"
	"movie-api/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

var configFile string

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "movie-api",
		Short:        "Movie catalogue HTTP API",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".env", "Path to .env config file")
	rootCmd.PersistentFlags().StringP("port", "p", "", "HTTP server port (or set PORT)")
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver: sqlite, postgres or mysql (or set DB_DRIVER)")
	rootCmd.PersistentFlags().StringP("db-path", "d", "", "SQLite database path (or set DB_PATH)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (or set DEBUG)")

	for key, flag := range map[string]string{
		"PORT":      "port",
		"DB_DRIVER": "db-driver",
		"DB_PATH":   "db-path",
		"DEBUG":     "debug",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			log.Fatalf("Failed to bind flag %s: %v", flag, err)
		}
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE:  runMigrate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "movie-api %s (commit: %s)\n", version, commit)
		},
	})

	return rootCmd
}

// bootstrap loads config, builds the logger and opens the database with its
// schema in place.
func bootstrap() (*utils.Config, *zap.Logger, *database.DB, error) {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using default production logger.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database",
			zap.Error(err),
			zap.String("driver", config.Database.Driver),
		)
		return nil, nil, nil, err
	}

	if err := database.InitSchema(context.Background(), db); err != nil {
		db.Close()
		logger.Error("Failed to initialize schema", zap.Error(err))
		return nil, nil, nil, err
	}

	logger.Info("Database ready",
		zap.String("driver", db.Driver()),
		zap.String("path", config.Database.Path),
	)

	return config, logger, db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	config, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("version", version),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	app := wire.Wiring(db, config, logger)

	return APIServer(app.Router, config.App.Port, logger)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	logger.Info("Schema is up to date")
	return nil
}
