package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sharedErrors "github.com/altcast/lightaudit/internal/shared/errors"
)

var reportJSONOutput bool

var reportCmd = &cobra.Command{
	Use:   "report <slug>",
	Short: "Show a stored audit report by slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := st.GetBySlug(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, sharedErrors.ErrAuditNotFound) {
				return fmt.Errorf("no report found for slug %q", args[0])
			}
			return err
		}

		if reportJSONOutput {
			return printJSON(rec)
		}

		fmt.Printf("%s  %s\n", colorInfo("URL:"), rec.TargetURL)
		if rec.PageTitle != "" {
			fmt.Printf("%s  %s\n", colorInfo("Title:"), rec.PageTitle)
		}
		fmt.Printf("%s  %s\n", colorInfo("Completed:"), rec.CompletedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Println()
		printResult(&rec.Result)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSONOutput, "json", false, "print the report as JSON")
}
