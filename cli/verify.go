package cli

import (
	"github.com/kvesta/cvssbase/internal"
	"github.com/spf13/cobra"
)

func verifyRecords() {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check cached published scores against the calculator",
		Long: `Examples:
  # Verify every cached v3.1 record
  $ cvssbase verify

  # Verify a single CVE and save the report
  $ cvssbase verify --cve CVE-2021-44228 -o report.json`,
		Args: NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.DoVerify(newContext())
		},
	}

	verifyCmd.Flags().StringVar(&cveID, "cve", "", "only verify this CVE")
	verifyCmd.Flags().StringVarP(&outfile, "output", "o", "", "output file location")

	rootCmd.AddCommand(verifyCmd)
}
