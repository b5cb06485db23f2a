package doctor

// Severity orders check outcomes from harmless to blocking.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	// SeverityWarning means folio works but something will surprise the user,
	// e.g. an entry that listings skip.
	SeverityWarning
	// SeverityError means a command will fail.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   Severity `json:"status"`
	Message  string   `json:"message"`
	// Details depend on the check, e.g. a resolved path.
	Details map[string]any `json:"details,omitempty"`
	// FixHint tells the user how to resolve the issue.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

func pass(msg string, details map[string]any) *CheckResult {
	return &CheckResult{Status: SeverityPass, Message: msg, Details: details}
}

func info(msg string, details map[string]any) *CheckResult {
	return &CheckResult{Status: SeverityInfo, Message: msg, Details: details}
}

func warn(msg, hint string, details map[string]any) *CheckResult {
	return &CheckResult{Status: SeverityWarning, Message: msg, FixHint: hint, Details: details}
}

func fail(msg, hint string, details map[string]any) *CheckResult {
	return &CheckResult{Status: SeverityError, Message: msg, FixHint: hint, Details: details}
}
