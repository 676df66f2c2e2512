package metrics

import "time"

// RecordSummaryCreated records one produced summary.
func RecordSummaryCreated(summaryType, summaryLength string) {
	SummariesCreatedTotal.WithLabelValues(summaryType, summaryLength).Inc()
}

// RecordSummarizationDuration records the time taken to produce a summary.
func RecordSummarizationDuration(summaryType string, duration time.Duration) {
	SummarizationDuration.WithLabelValues(summaryType).Observe(duration.Seconds())
}

// RecordOvershootCorrection records a corrective re-pass.
func RecordOvershootCorrection() {
	OvershootCorrectionsTotal.Inc()
}

// RecordExternalFallback records an external engine failure that was
// handled by the local abstractive path.
func RecordExternalFallback() {
	ExternalFallbacksTotal.Inc()
}

// RecordExternalModelCall records one external model API call.
// Status should be either "success" or "failure".
func RecordExternalModelCall(provider string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	ExternalModelCallsTotal.WithLabelValues(provider, status).Inc()
	ExternalModelDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordExtraction records one document text extraction attempt.
func RecordExtraction(format string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ExtractionsTotal.WithLabelValues(format, status).Inc()
}

// RecordSummariesPurged records permanently removed summaries.
func RecordSummariesPurged(count int64) {
	SummariesPurgedTotal.Add(float64(count))
}

// EngineRecorder adapts the registry counters to the summarization
// engine's recorder interface.
type EngineRecorder struct{}

func (EngineRecorder) RecordOvershootCorrection() {
	OvershootCorrectionsTotal.Inc()
}

func (EngineRecorder) RecordExternalFallback() {
	ExternalFallbacksTotal.Inc()
}
