package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/croftbar/blogadmin/config"
	"github.com/croftbar/blogadmin/models"
	"github.com/croftbar/blogadmin/routes"
	"github.com/croftbar/blogadmin/utils"
)

func main() {
	root := &cobra.Command{
		Use:           "blogadmin",
		Short:         "Blog administration service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Reset the database and load the sample dataset",
			RunE:  runSeed,
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := config.OpenDatabase(cfg, &models.User{}, &models.Post{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Sugar.Warnf("close database: %v", err)
		}
	}()

	r := routes.SetupRouter(db, cfg)

	utils.Sugar.Infof("starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := config.OpenDatabase(cfg, &models.User{}, &models.Post{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Sugar.Warnf("close database: %v", err)
		}
	}()

	stats, err := models.Seed(db)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	utils.Sugar.Infof("seed complete: %d users, %d posts (%d published)",
		stats.Users, stats.Posts, stats.Published)
	return nil
}
