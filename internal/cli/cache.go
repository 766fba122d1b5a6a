package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawkit/pkg/cache"
)

// cacheCommand groups the cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}
	cmd.AddCommand(c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

// cacheClearCommand removes cached artifacts from the file cache and, when
// DRAWKIT_REDIS_URL is set, from Redis under the current namespace.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var fileOnly bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			con := newConsole(cmd.OutOrStdout())

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			n, err := clearFileCache(dir)
			if err != nil {
				return err
			}
			con.success("Cleared %d cached artifacts", n)
			con.detail("Directory: %s", dir)

			url := os.Getenv(redisURLEnv)
			if url == "" || fileOnly {
				return nil
			}
			prefix := cache.KeyPrefix(os.Getenv(namespaceEnv))
			n, err = clearRedisCache(cmd.Context(), url, prefix)
			if err != nil {
				con.warn("Redis not cleared: %v", err)
				return nil
			}
			con.success("Cleared %d Redis entries", n)
			con.detail("Prefix: %s", prefix)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fileOnly, "file-only", false, "leave Redis entries alone")
	return cmd
}

func clearFileCache(dir string) (int, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, err
	}
	return fc.Clear()
}

func clearRedisCache(ctx context.Context, url, prefix string) (int, error) {
	rc, err := cache.NewRedisCache(ctx, url)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return rc.Clear(ctx, prefix)
}

// cachePathCommand prints the file cache directory.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
