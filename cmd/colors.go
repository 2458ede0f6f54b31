package cmd

import (
	"github.com/fatih/color"

	"github.com/altcast/lightaudit/internal/audit"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func colorStatus(status audit.Status) string {
	switch status {
	case audit.StatusClean:
		return colorSuccess(string(status))
	case audit.StatusVulnerable:
		return colorWarn(string(status))
	case audit.StatusError:
		return colorError(string(status))
	default:
		return string(status)
	}
}

func colorSeverity(sev audit.Severity) string {
	switch sev {
	case audit.SeverityCritical:
		return colorError(string(sev))
	case audit.SeverityWarning:
		return colorWarn(string(sev))
	default:
		return colorInfo(string(sev))
	}
}
