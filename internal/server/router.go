// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊，與 handler 分離：
//   - handler 定義「如何處理請求」
//   - router 定義「請求如何被導向」
//   - main.go 組裝整體應用（注入 Ledger / Log、Store、persist hook）
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"desksim/internal/fitness"
)

// Router 建立帳本的 HTTP 處理鏈。
func (s *BankServer) Router() http.Handler {
	v1 := http.NewServeMux()

	//   - GET  /accounts          → 列出帳戶
	//   - POST /accounts          → 開戶
	v1.HandleFunc("/accounts", s.accounts)

	//   - GET  /accounts/{id}
	//   - POST /accounts/{id}/deposit
	//   - POST /accounts/{id}/withdraw
	//   - POST /accounts/{id}/interest
	v1.HandleFunc("/accounts/", s.accountSubroutes)

	return mount(v1)
}

// Router 建立運動紀錄的 HTTP 處理鏈。
func (s *FitnessServer) Router() http.Handler {
	v1 := http.NewServeMux()
	v1.HandleFunc("/activities", s.activities)
	v1.HandleFunc("/activities/weekly", s.window(fitness.WeeklyWindow))
	v1.HandleFunc("/activities/monthly", s.window(fitness.MonthlyWindow))
	return mount(v1)
}

// mount 補上共用端點（/health、/metrics），將 v1 同時掛在 /api/v1/ 與根路徑下，
// 並包上中介層。
func mount(v1 *http.ServeMux) http.Handler {
	v1.HandleFunc("/health", health)

	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", v1))
	root.Handle("/", v1)
	return withRequestLog(root)
}
