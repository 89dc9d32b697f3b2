// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// 本層只描述序列化格式，不涉入商業邏輯；bank 與 fitness 各自負責與本層模型互轉。
package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Meta 為帳本快照的中繼資料，記錄儲存方式、版本與建立時間。
type Meta struct {
	Storage   string    `json:"storage"`        // 儲存類型，例如 "json_snapshot"
	Version   int       `json:"version"`        // 結構版本號，用於未來升級時比對
	Timestamp time.Time `json:"timestamp"`      // 快照建立時間
	Note      string    `json:"note,omitempty"` // 備註欄
}

// PersistAccount 為帳戶在儲存層的序列化格式。
// 利率與透支額度依帳戶類型擇一有值。
type PersistAccount struct {
	ID             string          `json:"id"`
	Owner          string          `json:"owner"`
	Balance        decimal.Decimal `json:"balance"`
	Kind           string          `json:"kind"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
}

// LedgerSnapshot 為帳本狀態的完整快照。
type LedgerSnapshot struct {
	Meta     Meta             `json:"_meta"`
	Accounts []PersistAccount `json:"accounts"`
}

// ActivityRecord 為單筆運動紀錄的儲存格式。
// 欄位名稱即 <user>_data.json 內每個物件的 key，不可任意更動。
type ActivityRecord struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Steps    int    `json:"steps"`
	Calories int    `json:"calories"`
	Workout  string `json:"workout"`
}
