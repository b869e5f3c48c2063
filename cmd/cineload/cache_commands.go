package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cineload/internal/logging"
	"cineload/internal/lookupcache"
	"cineload/internal/omdb"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the lookup cache",
		Long: `Inspect and manage the lookup cache.

The lookup cache stores OMDb results keyed by normalized title (and year
when the feed supplies one), including negative results, so repeated runs
never repeat a network lookup.

Commands:
  list     - List all cached lookups
  remove   - Remove a specific entry by key (see 'list' for keys)
  clear    - Remove all cached entries`,
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cached lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache(ctx)
			if err != nil {
				return err
			}

			entries := cache.List()
			out := cmd.OutOrStdout()

			if len(entries) == 0 {
				fmt.Fprintln(out, "Lookup cache: empty")
				return nil
			}

			fmt.Fprintf(out, "Lookup cache: %d entries\n\n", len(entries))
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Key, describePayload(entry.Payload)})
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Result"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}

func describePayload(payload *omdb.Payload) string {
	if payload == nil {
		return "not found"
	}
	if payload.Year != "" {
		return fmt.Sprintf("%s (%s)", payload.Title, payload.Year)
	}
	return payload.Title
}

func newCacheRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a specific cache entry by key",
		Long: `Remove a specific cache entry by its key from 'cineload cache list'.

Example:
  cineload cache list                    # Shows cached lookup keys
  cineload cache remove "Heat::1995"     # Forces a fresh lookup next run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache(ctx)
			if err != nil {
				return err
			}

			key := args[0]
			if _, ok := cache.Lookup(key); !ok {
				return fmt.Errorf("no cache entry for key %q", key)
			}
			if err := cache.Remove(key); err != nil {
				return fmt.Errorf("remove cache entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed cache entry %q\n", key)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cache entries",
		Long:  "Delete all cached lookups. The cache repopulates as movies are enriched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache(ctx)
			if err != nil {
				return err
			}

			count := cache.Count()
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Lookup cache is already empty")
				return nil
			}

			if err := cache.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cache entries\n", count)
			return nil
		},
	}
}

func openCache(ctx *commandContext) (*lookupcache.Cache, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.newLogger(cfg)
	if err != nil {
		return nil, err
	}
	return lookupcache.New(cfg.Paths.CacheFile, logging.NewComponentLogger(logger, "cli-cache")), nil
}
