package audit

// ErrorResult is the single report shape for every failed audit: malformed
// target, unreachable host, timeout, or an internal fault. The caller gets
// one sentinel finding and a zero score; the slug stays routable when it was
// derivable.
func ErrorResult(slug string, scanDuration int64) *Result {
	return &Result{
		Status: StatusError,
		Slug:   slug,
		Vulnerabilities: []SecurityCheck{{
			Code:        "[ERR-001] SCAN_TIMEOUT",
			Name:        CheckScanTimeout,
			Severity:    SeverityInfo,
			Description: "Target blocked the scanner or timed out.",
			Points:      0,
			MaxPoints:   0,
		}},
		ScanDuration:     scanDuration,
		SiteType:         SiteTypeUnknown,
		IndustryCategory: IndustryUnknown,
		TotalScore:       0,
		MaxScore:         100,
		ScorePercentage:  0,
	}
}

// PerfectResult builds the reference report of a fully hardened SaaS SPA:
// every catalogue check at full points. Used for demos and as a rendering
// fixture; it never comes out of a real scan unless the target earns it.
func PerfectResult(slug string, scanDuration int64) *Result {
	checks := []SecurityCheck{
		newCheck(CheckXSSProtection, SeverityInfo, "Content-Security-Policy header present", 15, 15),
		newCheck(CheckClickjacking, SeverityInfo, "Frame embedding protection enabled", 15, 15),
		newCheck(CheckTransportSecurity, SeverityInfo, "HSTS header enforces secure connections", 15, 15),
		newCheck(CheckMIMESniffing, SeverityInfo, "X-Content-Type-Options: nosniff enabled", 10, 10),
		newCheck(CheckServerDisclosure, SeverityInfo, "Server banner not disclosed", 5, 5),
		newCheck(CheckFrameworkExposure, SeverityInfo, "No framework fingerprint in headers", 5, 5),
		newCheck(CheckReferrerPolicy, SeverityInfo, "Referrer-Policy: strict-origin-when-cross-origin", 10, 10),
		newCheck(CheckPermissionsPolicy, SeverityInfo, "Permissions-Policy header present", 10, 10),
		newCheck(CheckSecurityTxt, SeverityInfo, "security.txt file present", 10, 10),
		newCheck(CheckRobotsTxt, SeverityInfo, "robots.txt present and clean", 5, 5),
	}

	return &Result{
		Status:           StatusClean,
		Slug:             slug,
		Vulnerabilities:  checks,
		ScanDuration:     scanDuration,
		SiteType:         SiteTypeSPA,
		IndustryCategory: IndustrySaaS,
		TotalScore:       100,
		MaxScore:         100,
		ScorePercentage:  100,
	}
}
