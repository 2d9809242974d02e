package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"card-assets/core/config"
	"card-assets/core/logger"
	"card-assets/core/storage"
	"card-assets/core/utils"
	"card-assets/feature/assets"

	"github.com/spf13/cobra"
)

var (
	presignExpires  time.Duration
	presignDownload bool
	presignFromURL  bool
)

// presignCmd prints a signed URL for one object key.
var presignCmd = &cobra.Command{
	Use:   "presign <key>",
	Short: "Print a signed URL for an object key",
	Long: `Signs a GET URL for the given object key using the storage configuration
from the environment or .env. With --from-url the argument is a stored asset URL
and the key is derived from its filename under catalog.image_prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			return err
		}
		defer logg.Sync()

		handle := storage.Initialize(cfg.Storage, logg)
		svc := assets.NewService(handle, cfg.Storage.Expiry(), logg, nil)

		key := args[0]
		if presignFromURL {
			key = assets.KeyFromURL(key, cfg.Catalog.ImagePrefix)
		}

		var params url.Values
		if presignDownload {
			params = assets.DownloadParams(utils.ExtractFilename(key))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		signed, err := svc.ResolveSignedURLWithParams(ctx, key, presignExpires, params)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	presignCmd.Flags().DurationVarP(&presignExpires, "expires", "e", 0, "URL lifetime (0 uses storage.default_expiry_seconds)")
	presignCmd.Flags().BoolVarP(&presignDownload, "download", "d", false, "Force a download with the object's filename")
	presignCmd.Flags().BoolVar(&presignFromURL, "from-url", false, "Treat the argument as a stored asset URL")
	RootCmd.AddCommand(presignCmd)
}
