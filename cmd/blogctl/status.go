package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"blogapi/internal/feed"
	"blogapi/internal/service"
)

func newTagsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags in first-seen order with post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := feed.NewView(o.api)
			if err := view.Refresh(cmd.Context()); err != nil {
				return err
			}

			tags := view.Tags()
			if len(tags) == 0 {
				o.printer.Info("No tags yet.")
				return nil
			}

			posts := view.Posts()
			table := o.printer.Table([]string{"TAG", "POSTS"})
			for _, tag := range tags {
				table.AddRow(tag, strconv.Itoa(len(feed.Filter(posts, "", tag))))
			}
			return table.Render()
		},
	}
}

func newHealthCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := o.api.Health(cmd.Context())
			if err != nil {
				return err
			}
			o.printer.Success("API %s at %s (%s)", health.Status, o.api.BaseURL, health.Timestamp)
			return nil
		},
	}
}

func newStatsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show post count and database time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := o.api.Stats(cmd.Context())
			if err != nil {
				return err
			}
			o.printer.Print("Posts:         %s", humanize.Comma(int64(stats.Posts)))
			o.printer.Print("Database time: %s", stats.DatabaseTime.Format(time.RFC3339))
			return nil
		},
	}
}

// newDoctorCmd talks to Postgres directly, bypassing the API.
func newDoctorCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Connect to the database and report its time and post count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
			defer cancel()

			poolCfg, err := pgxpool.ParseConfig(o.cfg.DB.DSN())
			if err != nil {
				return fmt.Errorf("parse database dsn: %w", err)
			}
			poolCfg.MaxConns = 2

			pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			var now time.Time
			if err := pool.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
				return fmt.Errorf("query database time: %w", err)
			}
			o.printer.Success("Connected to database")
			o.printer.Print("Database time: %s", now.Format(time.RFC3339))

			var count int64
			if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
				return fmt.Errorf("count posts: %w", err)
			}
			o.printer.Print("Posts:         %s", humanize.Comma(count))
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := service.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
