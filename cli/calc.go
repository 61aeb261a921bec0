package cli

import (
	"github.com/kvesta/cvssbase/internal"
	"github.com/spf13/cobra"
)

func calc() {
	calcCmd := &cobra.Command{
		Use:   "calc VECTOR [VECTOR...]",
		Short: "Calculate the base score of vectors",
		Long: `Examples:
  # Score a vector
  $ cvssbase calc CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H

  # Score a preset instead of a vector
  $ cvssbase calc sql_injection xss_reflected

  # Show the impact and exploitability sub-scores
  $ cvssbase calc --detail CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H

  # Print json, or save it to a file
  $ cvssbase calc --json CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H
  $ cvssbase calc -o result.json CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.DoCalc(newContext(), args)
		},
	}

	calcCmd.Flags().StringVarP(&outfile, "output", "o", "", "output file location")
	calcCmd.Flags().BoolVar(&asJson, "json", false, "print json instead of a table")
	calcCmd.Flags().BoolVar(&detail, "detail", false, "show the impact and exploitability sub-scores")

	rootCmd.AddCommand(calcCmd)
}
