package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/altcast/lightaudit/internal/audit"
)

var (
	auditJSONOutput bool
	auditSample     bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <url>",
	Short: "Run a light security audit against a single URL",
	Long: `Fetch the target page once, inspect its response headers and HTML,
probe /.well-known/security.txt and /robots.txt, and derive a heuristic
security score. The report is persisted under a shareable slug.

One primary request (10s budget) and two auxiliary requests (3s each);
no exploitation, no crawling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if auditSample {
			// Reference report of a fully hardened site; no network, no persistence.
			target := args[0]
			if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
				target = "https://" + target
			}
			slug := audit.GenerateSlug(target, time.Now())
			sample := audit.PerfectResult(slug, 0)
			if auditJSONOutput {
				return printJSON(sample)
			}
			printResult(sample)
			return nil
		}

		st, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		engine := newEngine(st)
		result := engine.Run(cmd.Context(), args[0])

		if auditJSONOutput {
			return printJSON(result)
		}
		printResult(result)
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditJSONOutput, "json", false, "print the report as JSON")
	auditCmd.Flags().BoolVar(&auditSample, "sample", false, "print a reference perfect report without scanning")
}
