// internal/observability/metrics.go
//
// Package observability 集中註冊 Prometheus 指標，由 /metrics 匯出。
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ledgerOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "desksim",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger operations by operation and outcome code.",
	}, []string{"op", "outcome"})

	activityAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "desksim",
		Subsystem: "activity",
		Name:      "added_total",
		Help:      "Activities appended and persisted.",
	})

	activityStoreWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "desksim",
		Subsystem: "activity",
		Name:      "store_writes_total",
		Help:      "Full rewrites of an activity store, by outcome.",
	}, []string{"outcome"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "desksim",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "code"})
)

func init() {
	prometheus.MustRegister(ledgerOperations, activityAdded, activityStoreWrites, httpRequests)
}

// RecordLedgerOp 記錄一次帳本操作；outcome 為錯誤代碼（成功為 "ok"）。
func RecordLedgerOp(op, outcome string) {
	ledgerOperations.WithLabelValues(op, outcome).Inc()
}

// RecordActivityAdded 記錄一筆成功附加並寫入的運動紀錄。
func RecordActivityAdded() {
	activityAdded.Inc()
}

// RecordStoreWrite 記錄一次 Store 覆寫的結果。
func RecordStoreWrite(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	activityStoreWrites.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest 記錄一次 HTTP 請求。
func RecordHTTPRequest(method string, code int) {
	httpRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}
