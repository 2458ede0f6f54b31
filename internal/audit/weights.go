package audit

import "fmt"

// CheckName identifies one of the fixed catalogue checks.
type CheckName string

const (
	CheckXSSProtection     CheckName = "XSS_PROTECTION"
	CheckClickjacking      CheckName = "CLICKJACKING"
	CheckTransportSecurity CheckName = "TRANSPORT_SECURITY"
	CheckMIMESniffing      CheckName = "MIME_SNIFFING"
	CheckServerDisclosure  CheckName = "SERVER_DISCLOSURE"
	CheckFrameworkExposure CheckName = "FRAMEWORK_EXPOSURE"
	CheckReferrerPolicy    CheckName = "REFERRER_POLICY"
	CheckPermissionsPolicy CheckName = "PERMISSIONS_POLICY"
	CheckSecurityTxt       CheckName = "SECURITY_TXT"
	CheckRobotsTxt         CheckName = "ROBOTS_TXT"

	// CheckScanTimeout is the sentinel emitted when an audit cannot complete.
	CheckScanTimeout CheckName = "SCAN_TIMEOUT"
)

// weight is the point schedule for one check outcome.
type weight struct {
	Max     int
	Pass    int
	Partial int
	Fail    int
}

// weights is the process-wide scoring table. Read-only after init; the sum
// of all Max values is 100.
var weights = map[CheckName]weight{
	CheckXSSProtection:     {Max: 15, Pass: 15, Partial: 8, Fail: 0},
	CheckClickjacking:      {Max: 15, Pass: 15, Partial: 8, Fail: 0},
	CheckTransportSecurity: {Max: 15, Pass: 15, Partial: 8, Fail: 0},
	CheckMIMESniffing:      {Max: 10, Pass: 10, Partial: 5, Fail: 0},
	CheckServerDisclosure:  {Max: 5, Pass: 5, Partial: 3, Fail: 0},
	CheckFrameworkExposure: {Max: 5, Pass: 5, Partial: 3, Fail: 0},
	CheckReferrerPolicy:    {Max: 10, Pass: 10, Partial: 5, Fail: 0},
	CheckPermissionsPolicy: {Max: 10, Pass: 10, Partial: 5, Fail: 0},
	CheckSecurityTxt:       {Max: 10, Pass: 10, Partial: 5, Fail: 0},
	CheckRobotsTxt:         {Max: 5, Pass: 5, Partial: 3, Fail: 0},
}

// cweByCheck maps every first-party check to its CWE tag.
var cweByCheck = map[CheckName]string{
	CheckXSSProtection:     "CWE-79",
	CheckClickjacking:      "CWE-1021",
	CheckTransportSecurity: "CWE-319",
	CheckMIMESniffing:      "CWE-16",
	CheckServerDisclosure:  "CWE-200",
	CheckFrameworkExposure: "CWE-200",
	CheckReferrerPolicy:    "CWE-200",
	CheckPermissionsPolicy: "CWE-16",
	CheckSecurityTxt:       "CWE-1059",
	CheckRobotsTxt:         "CWE-538",
}

// newCheck builds a finding with its CWE-tagged code. Unknown names get a
// placeholder tag; that never happens for catalogue checks.
func newCheck(name CheckName, severity Severity, description string, points, maxPoints int) SecurityCheck {
	cwe, ok := cweByCheck[name]
	if !ok {
		cwe = "CWE-000"
	}
	return SecurityCheck{
		Code:        fmt.Sprintf("[%s] %s", cwe, name),
		Name:        name,
		Severity:    severity,
		Description: description,
		Points:      points,
		MaxPoints:   maxPoints,
	}
}
