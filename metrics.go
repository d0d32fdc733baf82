package realip

// Metrics records resolution outcomes emitted by Resolver.
//
// Implementations should be safe for concurrent use, as a single Resolver
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordResolution is called once per resolution with the label of the
	// source that produced the returned address.
	RecordResolution(source string)
	// RecordCandidateMiss is called when a candidate header was present but
	// did not yield a usable address, causing fallback to the next candidate.
	RecordCandidateMiss(source string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordResolution(string) {}

func (noopMetrics) RecordCandidateMiss(string) {}
