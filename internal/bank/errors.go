// internal/bank/errors.go
//
// 本檔集中定義帳本的「領域錯誤（domain errors）」。
// 上層（HTTP handler）透過 Code() 取得穩定的錯誤代碼，再轉換為 HTTP 狀態碼與結構化回應。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")

	// ErrInvalidAmount 代表金額非法：存提款金額 <= 0、無法解析，
	// 或透支額度／利率為負。
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInsufficientFunds 代表儲蓄帳戶提款金額超過餘額。
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrOverdraftExceeded 代表支票帳戶提款超過 餘額 + 透支額度。
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// ErrUnsupportedOperation 代表此帳戶類型不支援該操作（例如對支票帳戶計息）。
	ErrUnsupportedOperation = errors.New("operation not supported for this account type")

	// ErrMissingField 代表建立帳戶時缺少帳號或戶名。
	ErrMissingField = errors.New("account id and owner are required")

	// ErrUnknownKind 代表未選擇或不認得的帳戶類型。
	ErrUnknownKind = errors.New("unknown account type")
)

// 錯誤代碼，供呈現層對應使用者訊息或 HTTP 狀態碼。
const (
	CodeOK                   = "ok"
	CodeNotFound             = "not_found"
	CodeInvalidAmount        = "invalid_amount"
	CodeInsufficientFunds    = "insufficient_funds"
	CodeOverdraftExceeded    = "overdraft_exceeded"
	CodeUnsupportedOperation = "unsupported_operation"
	CodeMissingField         = "missing_field"
	CodeUnknownKind          = "unknown_kind"
	CodeInternal             = "internal"
)

// Code 回傳 err 對應的錯誤代碼；err 為 nil 時回傳 CodeOK。
// 支援被 fmt.Errorf("%w") 包裝過的錯誤。
func Code(err error) string {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrOverdraftExceeded):
		return CodeOverdraftExceeded
	case errors.Is(err, ErrUnsupportedOperation):
		return CodeUnsupportedOperation
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrUnknownKind):
		return CodeUnknownKind
	default:
		return CodeInternal
	}
}
