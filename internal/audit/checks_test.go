package audit

import (
	"strings"
	"testing"

	"github.com/altcast/lightaudit/internal/probe"
)

// hardenedHeaders is a fully hardened header set: every protective header
// present, no disclosure headers.
func hardenedHeaders() map[string]string {
	return map[string]string{
		"content-security-policy":   "default-src 'self'; frame-ancestors 'none'",
		"strict-transport-security": "max-age=31536000; includeSubDomains",
		"x-frame-options":           "DENY",
		"x-content-type-options":    "nosniff",
		"referrer-policy":           "strict-origin-when-cross-origin",
		"permissions-policy":        "geolocation=()",
	}
}

func TestRunChecks_FullyHardenedScoresPerfect(t *testing.T) {
	checks, total, max := runChecks(checkInput{
		Headers:     hardenedHeaders(),
		HTTPS:       true,
		SiteType:    SiteTypeSPA,
		Industry:    IndustrySaaS,
		SecurityTxt: probe.SecurityTxtResult{Exists: true},
		RobotsTxt:   probe.RobotsTxtResult{Exists: true},
	})

	if len(checks) != 10 {
		t.Fatalf("expected 10 findings, got %d", len(checks))
	}
	if max != 100 {
		t.Errorf("expected max score 100, got %d", max)
	}
	if total != 100 {
		t.Errorf("expected total score 100, got %d", total)
	}

	pct, status := aggregate(checks, total, max)
	if pct != 100 {
		t.Errorf("expected 100%%, got %d", pct)
	}
	if status != StatusClean {
		t.Errorf("expected clean, got %s", status)
	}
}

func TestRunChecks_BareStaticSite(t *testing.T) {
	// Bare plain-HTTP static page with no protective headers.
	checks, total, max := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    false,
		SiteType: SiteTypeStatic,
		Industry: IndustryMarketing,
	})

	if max != 100 {
		t.Errorf("expected max 100, got %d", max)
	}

	byName := indexChecks(checks)

	// Static sites get the partial XSS and clickjacking exemptions.
	if got := byName[CheckXSSProtection].Points; got != 8 {
		t.Errorf("XSS_PROTECTION: expected 8 points, got %d", got)
	}
	if got := byName[CheckClickjacking].Points; got != 8 {
		t.Errorf("CLICKJACKING: expected 8 points, got %d", got)
	}
	// No HTTPS at all fails transport outright.
	if got := byName[CheckTransportSecurity].Points; got != 0 {
		t.Errorf("TRANSPORT_SECURITY: expected 0 points, got %d", got)
	}
	if byName[CheckTransportSecurity].Severity != SeverityWarning {
		t.Error("TRANSPORT_SECURITY: expected warning severity")
	}

	// 8+8+0+0+5+5+0+10+5+3 = 44
	if total != 44 {
		t.Errorf("expected total 44, got %d", total)
	}

	_, status := aggregate(checks, total, max)
	if status != StatusVulnerable {
		t.Errorf("expected vulnerable, got %s", status)
	}
}

func TestRunChecks_HTTPSWithoutHSTSIsPartial(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckTransportSecurity]
	if c.Points != 8 {
		t.Errorf("expected partial 8 points, got %d", c.Points)
	}
	if c.Severity != SeverityWarning {
		t.Error("expected warning severity for missing HSTS")
	}
}

func TestRunChecks_LegacyXSSHeaderIsPartial(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{"x-xss-protection": "1; mode=block"},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckXSSProtection]
	if c.Points != 8 {
		t.Errorf("expected partial 8 points for legacy header, got %d", c.Points)
	}
	if c.Severity != SeverityInfo {
		t.Error("expected info severity for legacy header")
	}
}

func TestRunChecks_FrameAncestorsCountsAsClickjackingProtection(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers: map[string]string{
			"content-security-policy": "default-src 'self'; frame-ancestors 'self'",
		},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	if got := indexChecks(checks)[CheckClickjacking].Points; got != 15 {
		t.Errorf("expected full clickjacking points via frame-ancestors, got %d", got)
	}
}

func TestRunChecks_DisclosureChecksAlwaysFullPoints(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers: map[string]string{
			"server":       "nginx/1.24.0",
			"x-powered-by": "Express",
		},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	byName := indexChecks(checks)

	server := byName[CheckServerDisclosure]
	if server.Points != 5 || server.Severity != SeverityInfo {
		t.Errorf("SERVER_DISCLOSURE: expected info/5, got %s/%d", server.Severity, server.Points)
	}
	if !strings.Contains(server.Description, "nginx/1.24.0") {
		t.Errorf("expected server banner echoed, got %q", server.Description)
	}

	framework := byName[CheckFrameworkExposure]
	if framework.Points != 5 || framework.Severity != SeverityInfo {
		t.Errorf("FRAMEWORK_EXPOSURE: expected info/5, got %s/%d", framework.Severity, framework.Points)
	}
	if !strings.Contains(framework.Description, "Express") {
		t.Errorf("expected framework echoed, got %q", framework.Description)
	}
}

func TestRunChecks_PermissionsPolicyAbsentStillFullPoints(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckPermissionsPolicy]
	if c.Points != 10 || c.Severity != SeverityInfo {
		t.Errorf("PERMISSIONS_POLICY: expected info/10 when absent, got %s/%d", c.Severity, c.Points)
	}
}

func TestRunChecks_FeaturePolicyCountsAsPermissionsPolicy(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{"feature-policy": "geolocation 'none'"},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckPermissionsPolicy]
	if c.Description != "Permissions-Policy header present" {
		t.Errorf("expected present description, got %q", c.Description)
	}
}

func TestRunChecks_SecurityTxtMissingIsPartial(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckSecurityTxt]
	if c.Points != 5 || c.Severity != SeverityInfo {
		t.Errorf("SECURITY_TXT: expected info/5 when missing, got %s/%d", c.Severity, c.Points)
	}
}

func TestRunChecks_RobotsSensitivePathsFail(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:   map[string]string{},
		HTTPS:     true,
		SiteType:  SiteTypeDynamic,
		Industry:  IndustryMarketing,
		RobotsTxt: probe.RobotsTxtResult{Exists: true, ExposesSensitive: true},
	})

	c := indexChecks(checks)[CheckRobotsTxt]
	if c.Points != 0 {
		t.Errorf("expected 0 points for sensitive robots.txt, got %d", c.Points)
	}
	if c.Severity != SeverityWarning {
		t.Errorf("expected warning severity, got %s", c.Severity)
	}
}

func TestRunChecks_RobotsMissingIsPartial(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	c := indexChecks(checks)[CheckRobotsTxt]
	if c.Points != 3 {
		t.Errorf("expected 3 points for missing robots.txt, got %d", c.Points)
	}
}

func TestRunChecks_FintechPenaltyApplied(t *testing.T) {
	// Fintech target missing HSTS and X-Frame-Options: 10% cut, floored.
	in := checkInput{
		Headers:     map[string]string{"content-security-policy": "default-src 'self'"},
		HTTPS:       true,
		SiteType:    SiteTypeSPA,
		Industry:    IndustryMarketing,
		SecurityTxt: probe.SecurityTxtResult{Exists: true},
		RobotsTxt:   probe.RobotsTxtResult{Exists: true},
	}

	_, undiscounted, _ := runChecks(in)

	in.Industry = IndustryFintech
	_, discounted, max := runChecks(in)

	want := undiscounted * 9 / 10
	if discounted != want {
		t.Errorf("expected floored penalty %d, got %d (undiscounted %d)", want, discounted, undiscounted)
	}
	if max != 100 {
		t.Errorf("penalty must not touch max score, got %d", max)
	}
}

func TestRunChecks_FintechNoPenaltyWhenHardened(t *testing.T) {
	in := checkInput{
		Headers:     hardenedHeaders(),
		HTTPS:       true,
		SiteType:    SiteTypeSPA,
		Industry:    IndustryFintech,
		SecurityTxt: probe.SecurityTxtResult{Exists: true},
		RobotsTxt:   probe.RobotsTxtResult{Exists: true},
	}

	_, total, _ := runChecks(in)
	if total != 100 {
		t.Errorf("expected no penalty with all critical headers, got %d", total)
	}
}

func TestRunChecks_ScoreBounds(t *testing.T) {
	headerSets := []map[string]string{
		{},
		hardenedHeaders(),
		{"server": "apache", "x-powered-by": "PHP/8.2"},
		{"x-xss-protection": "1", "referrer-policy": "no-referrer"},
		{"strict-transport-security": "max-age=63072000"},
	}

	for i, headers := range headerSets {
		for _, siteType := range []SiteType{SiteTypeSPA, SiteTypeStatic, SiteTypeDynamic} {
			for _, industry := range []IndustryCategory{IndustryFintech, IndustrySaaS, IndustryMarketing} {
				_, total, max := runChecks(checkInput{
					Headers:  headers,
					HTTPS:    i%2 == 0,
					SiteType: siteType,
					Industry: industry,
				})
				if max != 100 {
					t.Errorf("set %d %s/%s: expected max 100, got %d", i, siteType, industry, max)
				}
				if total < 0 || total > max {
					t.Errorf("set %d %s/%s: total %d out of bounds [0,%d]", i, siteType, industry, total, max)
				}
			}
		}
	}
}

func TestRunChecks_ExecutionOrderIsFixed(t *testing.T) {
	checks, _, _ := runChecks(checkInput{
		Headers:  map[string]string{},
		HTTPS:    true,
		SiteType: SiteTypeDynamic,
		Industry: IndustryMarketing,
	})

	wantOrder := []CheckName{
		CheckXSSProtection, CheckClickjacking, CheckTransportSecurity,
		CheckMIMESniffing, CheckServerDisclosure, CheckFrameworkExposure,
		CheckReferrerPolicy, CheckPermissionsPolicy, CheckSecurityTxt,
		CheckRobotsTxt,
	}

	if len(checks) != len(wantOrder) {
		t.Fatalf("expected %d checks, got %d", len(wantOrder), len(checks))
	}
	for i, name := range wantOrder {
		if checks[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, checks[i].Name)
		}
	}
}

func TestNewCheck_CWETags(t *testing.T) {
	c := newCheck(CheckXSSProtection, SeverityInfo, "desc", 15, 15)
	if c.Code != "[CWE-79] XSS_PROTECTION" {
		t.Errorf("expected CWE-tagged code, got %q", c.Code)
	}

	unknown := newCheck(CheckName("SOMETHING_ELSE"), SeverityInfo, "desc", 0, 0)
	if c := unknown.Code; c != "[CWE-000] SOMETHING_ELSE" {
		t.Errorf("expected placeholder tag for unknown check, got %q", c)
	}
}

func indexChecks(checks []SecurityCheck) map[CheckName]SecurityCheck {
	byName := make(map[CheckName]SecurityCheck, len(checks))
	for _, c := range checks {
		byName[c.Name] = c
	}
	return byName
}
