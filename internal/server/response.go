// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式。
// 成功與失敗皆為結構化結果：{"ok": true|false, ...}；
// 失敗時帶穩定的錯誤代碼 (code) 與訊息 (message)，由呈現端決定如何顯示。
package server

import (
	"encoding/json"
	"net/http"

	"desksim/internal/bank"
	"desksim/internal/fitness"
)

// codeBadRequest 用於請求本身無法解析（非 JSON、欄位型別錯誤）。
const codeBadRequest = "bad_request"

// errorBody 為失敗回應的內容。
type errorBody struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON 統一輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 以結構化 JSON 輸出錯誤；HTTP 狀態碼由錯誤代碼決定。
func writeErr(w http.ResponseWriter, code string, err error) {
	writeJSON(w, statusFor(code), errorBody{OK: false, Code: code, Message: err.Error()})
}

// statusFor 將領域錯誤代碼對應到 HTTP 狀態碼。
func statusFor(code string) int {
	switch code {
	case bank.CodeInvalidAmount, bank.CodeMissingField, bank.CodeUnknownKind,
		fitness.CodeInvalidInput, codeBadRequest:
		return http.StatusBadRequest
	case bank.CodeNotFound, fitness.CodeNoData:
		return http.StatusNotFound
	case bank.CodeInsufficientFunds, bank.CodeOverdraftExceeded:
		return http.StatusConflict
	case bank.CodeUnsupportedOperation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// methodNotAllowed 回傳 405，並以相同的錯誤格式描述。
func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{OK: false, Code: "method_not_allowed", Message: "method not allowed"})
}

// health 提供健康檢查端點：GET /health。
func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
