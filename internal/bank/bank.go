// internal/bank/bank.go

// Package bank 定義帳本核心邏輯：開戶、存款、提款、計息與查詢。
// Ledger 由呼叫端建立並持有，不使用套件層級的全域狀態；
// 所有狀態變更於同一把互斥鎖 (sync.Mutex) 內完成，HTTP 併發請求下仍逐筆序列化。
// 金額以 decimal.Decimal 表示，避免浮點誤差（100 × 0.03 恰為 3）。
package bank

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"desksim/internal/storage"
)

// Ledger 為聚合根 (Aggregate Root)：帳號 → 帳戶。
// 帳戶一旦建立便不會被刪除；以相同帳號再次建立會直接覆蓋舊帳戶。
type Ledger struct {
	mu    sync.Mutex
	accts map[string]*Account
}

// NewLedger 建立空白帳本。
func NewLedger() *Ledger {
	return &Ledger{accts: make(map[string]*Account)}
}

// CreateInput 為開戶參數。
// InterestRate 只對儲蓄帳戶有效、OverdraftLimit 只對支票帳戶有效；未指定時套用預設值。
type CreateInput struct {
	ID             string
	Owner          string
	Balance        decimal.Decimal
	Kind           Kind
	InterestRate   decimal.NullDecimal
	OverdraftLimit decimal.NullDecimal
}

// Receipt 為成功操作的結果：操作後的帳戶快照，以及給使用者看的訊息。
// Interest 只在 AccrueInterest 時有值。
type Receipt struct {
	Account  Account         `json:"account"`
	Message  string          `json:"message"`
	Interest decimal.Decimal `json:"interest,omitzero"`
}

// Create 開戶。帳號與戶名不可空白；初始餘額不做範圍檢查。
// 帳號已存在時靜默覆蓋（last write wins）。
func (l *Ledger) Create(in CreateInput) (Receipt, error) {
	id := strings.TrimSpace(in.ID)
	owner := strings.TrimSpace(in.Owner)
	if id == "" || owner == "" {
		return Receipt{}, ErrMissingField
	}

	a := &Account{ID: id, Owner: owner, Balance: in.Balance, Kind: in.Kind}
	var msg string
	switch in.Kind {
	case KindSavings:
		a.InterestRate = DefaultInterestRate
		if in.InterestRate.Valid {
			a.InterestRate = in.InterestRate.Decimal
		}
		if a.InterestRate.IsNegative() {
			return Receipt{}, fmt.Errorf("%w: interest rate %s", ErrInvalidAmount, a.InterestRate)
		}
		msg = "Savings Account Created!"
	case KindCurrent:
		a.OverdraftLimit = DefaultOverdraftLimit
		if in.OverdraftLimit.Valid {
			a.OverdraftLimit = in.OverdraftLimit.Decimal
		}
		if a.OverdraftLimit.IsNegative() {
			return Receipt{}, fmt.Errorf("%w: overdraft limit %s", ErrInvalidAmount, a.OverdraftLimit)
		}
		msg = "Current Account Created!"
	default:
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accts[id] = a
	return Receipt{Account: *a, Message: msg}, nil
}

// View 依帳號取得帳戶的目前快照（值拷貝）；不存在時回傳 ErrNotFound。
func (l *Ledger) View(id string) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// List 回傳所有帳戶的快照，依帳號排序。
func (l *Ledger) List() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Account, 0, len(l.accts))
	for _, a := range l.accts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Deposit 存款：金額需 > 0。先找帳戶再檢查金額，帳號不存在時一律回傳 ErrNotFound。
func (l *Ledger) Deposit(id string, amt decimal.Decimal) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[id]
	if !ok {
		return Receipt{}, ErrNotFound
	}
	if !amt.IsPositive() {
		return Receipt{}, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amt)
	return Receipt{
		Account: *a,
		Message: fmt.Sprintf("Deposited %s. New balance: %s", amt, a.Balance),
	}, nil
}

// Withdraw 提款：與 Deposit 相同，先確認帳戶存在，金額需 > 0。
// 儲蓄帳戶不得超過餘額 (ErrInsufficientFunds)；
// 支票帳戶不得超過 餘額 + 透支額度 (ErrOverdraftExceeded)。失敗時餘額不變。
func (l *Ledger) Withdraw(id string, amt decimal.Decimal) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[id]
	if !ok {
		return Receipt{}, ErrNotFound
	}
	if !amt.IsPositive() {
		return Receipt{}, ErrInvalidAmount
	}
	if err := a.withdraw(amt); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Account: *a,
		Message: fmt.Sprintf("Withdrew %s. New balance: %s", amt, a.Balance),
	}, nil
}

// AccrueInterest 對儲蓄帳戶計息一次：利息 = 餘額 × 利率，並併入餘額。
// 可重複呼叫，每次以新餘額複利計算，沒有次數上限。
// 非儲蓄帳戶回傳 ErrUnsupportedOperation。
func (l *Ledger) AccrueInterest(id string) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[id]
	if !ok {
		return Receipt{}, ErrNotFound
	}
	interest, err := a.accrue()
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Account:  *a,
		Message:  fmt.Sprintf("Interest added: %s. New balance: %s", interest, a.Balance),
		Interest: interest,
	}, nil
}

// Snapshot 匯出帳本狀態為 storage.LedgerSnapshot（依帳號排序）。
func (l *Ledger) Snapshot() storage.LedgerSnapshot {
	s := storage.LedgerSnapshot{
		Meta: storage.Meta{Storage: "json_snapshot", Version: 1},
	}
	for _, a := range l.List() {
		s.Accounts = append(s.Accounts, storage.PersistAccount{
			ID:             a.ID,
			Owner:          a.Owner,
			Balance:        a.Balance,
			Kind:           string(a.Kind),
			InterestRate:   a.InterestRate,
			OverdraftLimit: a.OverdraftLimit,
		})
	}
	return s
}

// Restore 以快照內容取代整個帳本。遇到不認得的帳戶類型時回傳錯誤，帳本維持原狀。
func (l *Ledger) Restore(s storage.LedgerSnapshot) error {
	accts := make(map[string]*Account, len(s.Accounts))
	for _, pa := range s.Accounts {
		kind, err := ParseKind(pa.Kind)
		if err != nil {
			return fmt.Errorf("restore account %s: %w", pa.ID, err)
		}
		a := &Account{ID: pa.ID, Owner: pa.Owner, Balance: pa.Balance, Kind: kind}
		switch kind {
		case KindSavings:
			a.InterestRate = pa.InterestRate
		case KindCurrent:
			a.OverdraftLimit = pa.OverdraftLimit
		}
		accts[a.ID] = a
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accts = accts
	return nil
}
