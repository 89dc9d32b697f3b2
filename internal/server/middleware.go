// internal/server/middleware.go
//
// 共用的 HTTP 中介層：請求 ID、存取日誌、請求計數。
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"desksim/internal/observability"
)

// RequestIDHeader 為請求 ID 的標頭；用戶端未提供時由伺服器產生。
const RequestIDHeader = "X-Request-ID"

// statusRecorder 記住 handler 寫出的狀態碼。
type statusRecorder struct {
	http.ResponseWriter
	status int
}

// WriteHeader 記下狀態碼供 log 與指標使用。
func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog 為每個請求補上 X-Request-ID，並在結束時記錄 method、path、狀態碼與耗時。
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		observability.RecordHTTPRequest(r.Method, rec.status)
		log.Printf("%s %s %d %s id=%s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), id)
	})
}
