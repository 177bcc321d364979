package flextelemetry

// Metric names emitted by the accuracy engine and its collaborators.
// Grounded on telemetry/metrics/names.go's flat-constant taxonomy.
const (
	AlignCacheHitsTotal    = "flexacc_align_cache_hits_total"
	AlignCacheMissesTotal  = "flexacc_align_cache_misses_total"
	DistanceCacheHitTotal  = "flexacc_distance_cache_hits_total"
	DistanceCacheMissTotal = "flexacc_distance_cache_misses_total"
	SweepIterationsTotal   = "flexacc_sweep_iterations_total"
	SweepEarlyExitTotal    = "flexacc_sweep_early_exit_total"
	MatchesTotal           = "flexacc_matches_total"
	DocumentsScoredTotal   = "flexacc_documents_scored_total"

	ScoreDocumentMs = "flexacc_score_document_ms"
	AlignLineMs     = "flexacc_align_line_ms"

	TagCoefficients = "coefficients"
)
