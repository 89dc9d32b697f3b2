// internal/fitness/errors.go

package fitness

import "errors"

var (
	// ErrInvalidInput 代表步數或卡路里不是非負整數，或日期格式錯誤。
	ErrInvalidInput = errors.New("steps and calories must be non-negative whole numbers")

	// ErrNoData 代表要繪圖的區間沒有任何紀錄。
	ErrNoData = errors.New("no data to show")
)

const (
	CodeOK           = "ok"
	CodeInvalidInput = "invalid_input"
	CodeNoData       = "no_data"
	CodeInternal     = "internal"
)

// Code 回傳 err 對應的錯誤代碼。
func Code(err error) string {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrNoData):
		return CodeNoData
	default:
		return CodeInternal
	}
}
