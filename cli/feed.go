package cli

import (
	"github.com/kvesta/cvssbase/internal"
	"github.com/spf13/cobra"
)

func feed() {
	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Manage the local cache of published cvss records",
		Long: `Examples:
  # Import NVD json files, 1.1 feeds and 2.0 api responses, optionally gzip compressed
  $ cvssbase feed import nvdcve-1.1-2022.json.gz

  # Fetch the first 5 pages from the NVD api
  $ cvssbase feed fetch --pages 5

  # Drop the cache and fetch everything again
  $ cvssbase feed fetch -a`}

	importCmd := &cobra.Command{
		Use:   "import FILE [FILE...]",
		Short: "import records from NVD json files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.DoImport(newContext(), args)
		},
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "fetch records from the NVD api",
		Args:  NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.DoFetch(newContext())
		},
	}

	importCmd.Flags().BoolVarP(&upgradeall, "all", "a", false, "Reset the database")

	fetchCmd.Flags().BoolVarP(&upgradeall, "all", "a", false, "Reset the database")
	fetchCmd.Flags().IntVar(&pages, "pages", 0, "number of pages to fetch, 0 for all")

	feedCmd.AddCommand(importCmd)
	feedCmd.AddCommand(fetchCmd)

	rootCmd.AddCommand(feedCmd)
}
