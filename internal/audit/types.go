// Package audit implements the light audit engine: a single bounded-time
// fetch of a target site, a fixed catalogue of weighted security checks,
// and a shareable scored report.
package audit

import "time"

// Severity classifies how serious a finding is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Status is the overall outcome of an audit run.
type Status string

const (
	StatusClean      Status = "clean"
	StatusVulnerable Status = "vulnerable"
	StatusError      Status = "error"
)

// SiteType is the heuristic classification of the target's architecture.
type SiteType string

const (
	SiteTypeSPA     SiteType = "spa"
	SiteTypeStatic  SiteType = "static"
	SiteTypeDynamic SiteType = "dynamic"
	SiteTypeAPI     SiteType = "api"
	SiteTypeUnknown SiteType = "unknown"
)

// IndustryCategory is the heuristic classification of the target's sector.
// Only fintech affects scoring; the rest are informational.
type IndustryCategory string

const (
	IndustryFintech   IndustryCategory = "fintech"
	IndustryEcommerce IndustryCategory = "ecommerce"
	IndustrySaaS      IndustryCategory = "saas"
	IndustryMarketing IndustryCategory = "marketing"
	IndustryUnknown   IndustryCategory = "unknown"
)

// SecurityCheck is one scored finding. Immutable once created; an audit run
// produces one per catalogue entry, or a single sentinel on failure.
type SecurityCheck struct {
	Code        string    `json:"code"`
	Name        CheckName `json:"name"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	MaxPoints   int       `json:"maxPoints"`
}

// Result is the report returned to the caller. Never mutated after
// construction; identified externally by Slug.
type Result struct {
	Status           Status           `json:"status"`
	Slug             string           `json:"slug"`
	Vulnerabilities  []SecurityCheck  `json:"vulnerabilities"`
	ScanDuration     int64            `json:"scanDuration"` // milliseconds
	SiteType         SiteType         `json:"siteType"`
	IndustryCategory IndustryCategory `json:"industryCategory"`
	TotalScore       int              `json:"totalScore"`
	MaxScore         int              `json:"maxScore"`
	ScorePercentage  int              `json:"scorePercentage"`
}

// Record is the persisted form of a result, keyed by slug with
// last-write-wins upsert semantics.
type Record struct {
	ID          string    `json:"id"`
	TargetURL   string    `json:"targetUrl"`
	CompletedAt time.Time `json:"completedAt"`
	PageTitle   string    `json:"pageTitle,omitempty"`
	Generator   string    `json:"generator,omitempty"`
	Result
}
