package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/altcast/lightaudit/internal/probe"
)

// checkInput is everything the catalogue consumes: normalized response
// headers, page/url classification, and the auxiliary probe results. All
// checks are pure functions over this snapshot.
type checkInput struct {
	Headers     map[string]string
	HTTPS       bool
	SiteType    SiteType
	Industry    IndustryCategory
	SecurityTxt probe.SecurityTxtResult
	RobotsTxt   probe.RobotsTxtResult
}

// scorecard accumulates findings and running totals as checks execute.
type scorecard struct {
	checks []SecurityCheck
	total  int
	max    int
}

// add records one finding and contributes the check's maximum to the
// running max regardless of outcome.
func (s *scorecard) add(name CheckName, severity Severity, description string, points int) {
	w := weights[name]
	s.checks = append(s.checks, newCheck(name, severity, description, points, w.Max))
	s.total += points
	s.max += w.Max
}

// runChecks executes the ten catalogue checks in their fixed order, applies
// the fintech penalty, and returns the findings with final totals.
func runChecks(in checkInput) (checks []SecurityCheck, total, max int) {
	card := &scorecard{}

	// 1. XSS protection via CSP
	hasCSP := in.Headers["content-security-policy"] != ""
	hasXSSHeader := in.Headers["x-xss-protection"] != ""
	switch {
	case hasCSP:
		card.add(CheckXSSProtection, SeverityInfo, "Content-Security-Policy header present", weights[CheckXSSProtection].Pass)
	case hasXSSHeader:
		card.add(CheckXSSProtection, SeverityInfo, "Legacy X-XSS-Protection present (CSP recommended)", weights[CheckXSSProtection].Partial)
	case in.SiteType == SiteTypeStatic:
		card.add(CheckXSSProtection, SeverityInfo, "No CSP (acceptable for static site)", weights[CheckXSSProtection].Partial)
	default:
		card.add(CheckXSSProtection, SeverityWarning, "No Content-Security-Policy header", weights[CheckXSSProtection].Fail)
	}

	// 2. Clickjacking
	hasXFrameOptions := in.Headers["x-frame-options"] != ""
	hasFrameAncestors := strings.Contains(in.Headers["content-security-policy"], "frame-ancestors")
	switch {
	case hasXFrameOptions || hasFrameAncestors:
		card.add(CheckClickjacking, SeverityInfo, "Frame embedding protection enabled", weights[CheckClickjacking].Pass)
	case in.SiteType == SiteTypeStatic || in.SiteType == SiteTypeAPI:
		card.add(CheckClickjacking, SeverityInfo, fmt.Sprintf("No frame protection (acceptable for %s site)", in.SiteType), weights[CheckClickjacking].Partial)
	default:
		card.add(CheckClickjacking, SeverityWarning, "Missing X-Frame-Options or frame-ancestors", weights[CheckClickjacking].Fail)
	}

	// 3. Transport security
	hasHSTS := in.Headers["strict-transport-security"] != ""
	switch {
	case hasHSTS:
		card.add(CheckTransportSecurity, SeverityInfo, "HSTS header enforces secure connections", weights[CheckTransportSecurity].Pass)
	case in.HTTPS:
		card.add(CheckTransportSecurity, SeverityWarning, "HTTPS present but no HSTS header", weights[CheckTransportSecurity].Partial)
	default:
		card.add(CheckTransportSecurity, SeverityWarning, "No HTTPS detected", weights[CheckTransportSecurity].Fail)
	}

	// 4. MIME sniffing
	if strings.Contains(in.Headers["x-content-type-options"], "nosniff") {
		card.add(CheckMIMESniffing, SeverityInfo, "X-Content-Type-Options: nosniff enabled", weights[CheckMIMESniffing].Pass)
	} else {
		card.add(CheckMIMESniffing, SeverityWarning, "MIME type sniffing protection not enabled", weights[CheckMIMESniffing].Fail)
	}

	// 5. Server disclosure, informational: full points either way
	if server := in.Headers["server"]; server == "" {
		card.add(CheckServerDisclosure, SeverityInfo, "Server banner not disclosed", weights[CheckServerDisclosure].Pass)
	} else {
		card.add(CheckServerDisclosure, SeverityInfo, fmt.Sprintf("Server: %s (informational)", server), weights[CheckServerDisclosure].Pass)
	}

	// 6. Framework exposure, informational
	if poweredBy := in.Headers["x-powered-by"]; poweredBy == "" {
		card.add(CheckFrameworkExposure, SeverityInfo, "No framework fingerprint in headers", weights[CheckFrameworkExposure].Pass)
	} else {
		card.add(CheckFrameworkExposure, SeverityInfo, fmt.Sprintf("Framework: %s (informational)", poweredBy), weights[CheckFrameworkExposure].Pass)
	}

	// 7. Referrer policy
	if referrer := in.Headers["referrer-policy"]; referrer != "" {
		card.add(CheckReferrerPolicy, SeverityInfo, fmt.Sprintf("Referrer-Policy: %s", referrer), weights[CheckReferrerPolicy].Pass)
	} else {
		card.add(CheckReferrerPolicy, SeverityWarning, "No Referrer-Policy header", weights[CheckReferrerPolicy].Fail)
	}

	// 8. Permissions policy, informational
	if in.Headers["permissions-policy"] != "" || in.Headers["feature-policy"] != "" {
		card.add(CheckPermissionsPolicy, SeverityInfo, "Permissions-Policy header present", weights[CheckPermissionsPolicy].Pass)
	} else {
		card.add(CheckPermissionsPolicy, SeverityInfo, "No Permissions-Policy header (optional)", weights[CheckPermissionsPolicy].Pass)
	}

	// 9. security.txt
	if in.SecurityTxt.Exists {
		card.add(CheckSecurityTxt, SeverityInfo, "security.txt file present", weights[CheckSecurityTxt].Pass)
	} else {
		card.add(CheckSecurityTxt, SeverityInfo, "No security.txt file (recommended)", weights[CheckSecurityTxt].Partial)
	}

	// 10. robots.txt
	switch {
	case in.RobotsTxt.Exists && !in.RobotsTxt.ExposesSensitive:
		card.add(CheckRobotsTxt, SeverityInfo, "robots.txt present and clean", weights[CheckRobotsTxt].Pass)
	case in.RobotsTxt.ExposesSensitive:
		card.add(CheckRobotsTxt, SeverityWarning, "robots.txt may expose sensitive paths", weights[CheckRobotsTxt].Fail)
	default:
		card.add(CheckRobotsTxt, SeverityInfo, "No robots.txt file", weights[CheckRobotsTxt].Partial)
	}

	// Fintech targets missing any of the critical headers take a 10% cut.
	// Applied once after summation; maxScore stays untouched so the
	// percentage already reflects the penalty.
	if in.Industry == IndustryFintech {
		if !(hasCSP && hasHSTS && hasXFrameOptions) {
			card.total = int(math.Floor(float64(card.total) * 0.9))
		}
	}

	return card.checks, card.total, card.max
}

// aggregate maps totals to the external percentage and status.
func aggregate(checks []SecurityCheck, total, max int) (percentage int, status Status) {
	percentage = int(math.Round(float64(total) / float64(max) * 100))

	status = StatusClean
	for _, c := range checks {
		if c.Severity == SeverityCritical || c.Severity == SeverityWarning {
			status = StatusVulnerable
			break
		}
	}
	return percentage, status
}
