package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/database"
)

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio website",
	Long: `Portfolio serves the about, career, projects and contact pages together
with a JSON API for editing their content.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		setupLogging(cfg)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("database-uri", "", "database URI (sqlite:///path.db or postgres://...)")
	flags.String("env", "", "configuration profile: development, production or default")
	flags.Bool("debug", false, "enable debug logging")
	bindFlag(config.KeyDatabaseURI, "database-uri")
	bindFlag(config.KeyEnv, "env")
	bindFlag(config.KeyDebug, "debug")
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase connects and migrates; callers close the handle.
func openDatabase() (*gorm.DB, error) {
	db, err := database.Open(database.Options{
		URI:      cfg.DatabaseURI,
		TraceSQL: cfg.TrackModifications,
	})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, err
	}
	return db, nil
}
