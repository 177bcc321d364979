package accuracy

import (
	"github.com/flexacc/flexacc/internal/flextelemetry"
)

func telemetryDistanceCacheHit() {
	flextelemetry.EmitCounter(flextelemetry.DistanceCacheHitTotal, 1, nil)
}

func telemetryDistanceCacheMiss() {
	flextelemetry.EmitCounter(flextelemetry.DistanceCacheMissTotal, 1, nil)
}

func telemetryAlignCacheHit() {
	flextelemetry.EmitCounter(flextelemetry.AlignCacheHitsTotal, 1, nil)
}

func telemetryAlignCacheMiss() {
	flextelemetry.EmitCounter(flextelemetry.AlignCacheMissesTotal, 1, nil)
}
