package telemetry

import (
	"github.com/armon/go-metrics"
)

const (
	oracleMetricsPrefix = "oracle"
	bridgeMetricsPrefix = "bridge"
)

func UpdateOracleEventsFetchedCounter(chain string, cnt int) {
	metrics.IncrCounter([]string{oracleMetricsPrefix, "events_fetched_counter", chain}, float32(cnt))
}

func UpdateOracleIntentsExtractedCounter(chain string, cnt int) {
	metrics.IncrCounter([]string{oracleMetricsPrefix, "intents_extracted_counter", chain}, float32(cnt))
}

func UpdateBridgeSubmitSucceededCounter(chain string, cnt int) {
	metrics.IncrCounter([]string{bridgeMetricsPrefix, "submit_succeeded_counter", chain}, float32(cnt))
}

func UpdateBridgeSubmitFailedCounter(chain string, cnt int) {
	metrics.IncrCounter([]string{bridgeMetricsPrefix, "submit_failed_counter", chain}, float32(cnt))
}

func UpdateBridgeDegradedRateCounter(chain string, cnt int) {
	metrics.IncrCounter([]string{bridgeMetricsPrefix, "degraded_rate_counter", chain}, float32(cnt))
}

func UpdateOracleLastProcessedLedger(chain string, ledger uint32) {
	metrics.SetGauge([]string{oracleMetricsPrefix, "last_processed_ledger", chain}, float32(ledger))
}
