package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/altcast/lightaudit/internal/audit"
)

// printResult renders a report for the terminal: one line per finding plus
// the aggregate score.
func printResult(res *audit.Result) {
	fmt.Printf("%s  %s\n", colorInfo("Report:"), res.Slug)
	fmt.Printf("%s  %s\n", colorInfo("Status:"), colorStatus(res.Status))
	fmt.Printf("%s  %s / %s\n", colorInfo("Target:"), string(res.SiteType), string(res.IndustryCategory))
	fmt.Println()

	for _, c := range res.Vulnerabilities {
		fmt.Printf("  [%2d/%2d] %-9s %-20s %s\n",
			c.Points, c.MaxPoints, colorSeverity(c.Severity), c.Name, c.Description)
	}

	fmt.Println()
	fmt.Printf("%s  %d/%d (%d%%) in %dms\n",
		colorInfo("Score:"), res.TotalScore, res.MaxScore, res.ScorePercentage, res.ScanDuration)
}

// printJSON writes any report shape as indented JSON.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
