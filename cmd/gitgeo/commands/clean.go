package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gitgeo/internal/app"
	"go.trai.ch/gitgeo/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete the contributor-listing and contributor-location caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			overrideString(flags, "repo-cache", &opts.RepoCachePath)
			overrideString(flags, "contributor-cache", &opts.ContributorCachePath)

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				RepoCachePath:        opts.RepoCachePath,
				ContributorCachePath: opts.ContributorCachePath,
			})
		},
	}

	cmd.Flags().String("repo-cache", domain.DefaultRepoCacheFile, "Contributor-listing cache file")
	cmd.Flags().String("contributor-cache", domain.DefaultContributorCacheFile, "Contributor-location cache file")

	return cmd
}
