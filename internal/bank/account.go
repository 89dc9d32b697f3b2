// internal/bank/account.go
//
// Package bank 定義帳本的核心領域模型與業務規則。
// 本檔定義 Account 與帳戶類型（Kind），不含任何 HTTP 或儲存細節。

package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind 為帳戶類型（tagged variant）。提款與計息行為以 switch Kind 分派，
// 不使用繼承式的型別階層。
type Kind string

const (
	// KindSavings 儲蓄帳戶：不可透支，可計息。
	KindSavings Kind = "savings"
	// KindCurrent 支票帳戶：可透支至 -OverdraftLimit，不可計息。
	KindCurrent Kind = "current"
)

var (
	// DefaultInterestRate 為儲蓄帳戶未指定利率時的預設值（3%）。
	DefaultInterestRate = decimal.RequireFromString("0.03")
	// DefaultOverdraftLimit 為支票帳戶未指定透支額度時的預設值。
	DefaultOverdraftLimit = decimal.NewFromInt(500)
)

// ParseKind 將使用者輸入轉為 Kind。
// 接受 "savings"/"current"，以及表單下拉選單的 "Savings Account"/"Current Account"。
func ParseKind(raw string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, " account")
	switch Kind(s) {
	case KindSavings:
		return KindSavings, nil
	case KindCurrent:
		return KindCurrent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// Account represents a bank account.
// 建立後 Balance 只能經由 Deposit / Withdraw / AccrueInterest 改變。
type Account struct {
	ID      string          `json:"id"`
	Owner   string          `json:"owner"`
	Balance decimal.Decimal `json:"balance"`
	Kind    Kind            `json:"kind"`

	// 僅儲蓄帳戶有意義。
	InterestRate decimal.Decimal `json:"interest_rate,omitzero"`
	// 僅支票帳戶有意義。
	OverdraftLimit decimal.Decimal `json:"overdraft_limit,omitzero"`
}

// Summary 回傳「戶名 + 餘額」的文字摘要，即查詢餘額時顯示給使用者的內容。
func (a *Account) Summary() string {
	return fmt.Sprintf("Owner: %s\nBalance: %s", a.Owner, a.Balance)
}

// withdraw 依帳戶類型檢查提款上限並扣款；呼叫端須持有 Ledger 的鎖。
func (a *Account) withdraw(amt decimal.Decimal) error {
	switch a.Kind {
	case KindCurrent:
		if amt.GreaterThan(a.Balance.Add(a.OverdraftLimit)) {
			return ErrOverdraftExceeded
		}
	default:
		if amt.GreaterThan(a.Balance) {
			return ErrInsufficientFunds
		}
	}
	a.Balance = a.Balance.Sub(amt)
	return nil
}

// accrue 計算並加入利息，回傳本次利息；只有儲蓄帳戶支援。
func (a *Account) accrue() (decimal.Decimal, error) {
	if a.Kind != KindSavings {
		return decimal.Zero, ErrUnsupportedOperation
	}
	interest := a.Balance.Mul(a.InterestRate)
	a.Balance = a.Balance.Add(interest)
	return interest, nil
}

// ParseAmount 將使用者輸入的文字轉為金額；無法解析時回傳 ErrInvalidAmount。
// 不檢查正負，正負規則由各操作自行判斷。
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}
