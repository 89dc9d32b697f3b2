// internal/server/input.go
//
// 請求欄位的原始文字擷取。金額、步數等欄位同時接受 JSON 數字與字串，
// 取出原始文字後交給領域層的 Parse* 函式，格式錯誤因此回報領域錯誤碼而非 bad_request。
package server

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"desksim/internal/bank"
)

// rawText 取出 JSON 欄位的原始文字：字串去掉引號，其他值保留字面內容。
// 欄位缺少或為 null 時 ok 為 false。
func rawText(m json.RawMessage) (text string, ok bool) {
	if len(m) == 0 || string(m) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s, true
	}
	return string(m), true
}

// amountField 以 bank.ParseAmount 解析金額欄位；欄位缺少時回傳 Valid=false。
func amountField(name string, m json.RawMessage) (decimal.NullDecimal, error) {
	raw, ok := rawText(m)
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	d, err := bank.ParseAmount(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s: %w", name, err)
	}
	return decimal.NewNullDecimal(d), nil
}
