package metrics

import "time"

// Outcome labels shared by the recorders.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// RecordDBQuery records the duration of one post store statement.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	DBQueryDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordPostOperation counts a post use-case call.
func RecordPostOperation(operation, outcome string) {
	PostOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordSuggestion records the result and latency of one suggestion request.
func RecordSuggestion(provider string, duration time.Duration, success bool) {
	outcome := OutcomeOK
	if !success {
		outcome = OutcomeError
	}
	SuggestionRequestsTotal.WithLabelValues(provider, outcome).Inc()
	SuggestionDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
