package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmldoom/internal/logging"
	"github.com/vango-dev/htmldoom/pkg/metrics"
	"github.com/vango-dev/htmldoom/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		bucket string
		prefix string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload every value to S3",
		Long: `Render every value and upload it to <prefix><path>.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  htmldoom publish --bucket=my-site
  htmldoom publish --prefix=staging/ --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Publish
			if bucket != "" {
				cfg.Bucket = bucket
			}
			if prefix != "" {
				cfg.Prefix = prefix
			}

			values, err := a.loadValues(a.cfg.ValuesPath())
			if err != nil {
				return err
			}

			p, err := publish.New(publish.NewClient(cfg.Region, cfg.Endpoint), publish.Config{
				Bucket:       cfg.Bucket,
				Prefix:       cfg.Prefix,
				ContentType:  cfg.ContentType,
				CacheControl: cfg.CacheControl,
				DryRun:       dryRun,
				Metrics:      metrics.New(),
				Logger:       logging.Default(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			keys, err := p.Publish(ctx, values)
			for _, key := range keys {
				info(cmd, "s3://%s/%s", cfg.Bucket, key)
			}
			if err != nil {
				return err
			}
			success(cmd, "Published %d pages", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target bucket (default from htmldoom.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from htmldoom.json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log uploads without performing them")

	return cmd
}
