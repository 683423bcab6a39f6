package diagnostics

const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

type CheckResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type Report struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
	RanAt  string        `json:"ran_at"`
}
