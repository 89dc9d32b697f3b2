// internal/server/handler.go
//
// Package server 提供 HTTP/JSON 介面，作為 bank 與 fitness 模組的呈現層。
// 每個 handler 僅負責：
//  1. 接收並解析請求（原始輸入的轉換交給領域層的 Parse* 函式）
//  2. 呼叫領域層執行業務邏輯
//  3. 回傳結構化 JSON 結果
//  4. 帳本成功變更後呼叫 persist()
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"desksim/internal/bank"
	"desksim/internal/observability"
)

// BankServer 為帳本的 HTTP 層：
// - Ledger：注入的帳本。
// - persist：持久化鉤子，可為 nil；於每次成功變更後觸發，同一時間只執行一個。
type BankServer struct {
	Ledger *bank.Ledger

	persistMu sync.Mutex
	persist   func() error
}

// NewBankServer 建立帳本 HTTP 伺服器。
func NewBankServer(l *bank.Ledger, persist func() error) *BankServer {
	return &BankServer{Ledger: l, persist: persist}
}

// receiptBody 為成功回應：{"ok": true, "account": ..., "message": ...}。
type receiptBody struct {
	OK bool `json:"ok"`
	bank.Receipt
}

// createRequest 的金額欄位保留原始 JSON，由 create 以 bank.ParseAmount 解析。
type createRequest struct {
	ID             string          `json:"id"`
	Owner          string          `json:"owner"`
	Balance        json.RawMessage `json:"balance"`
	Kind           string          `json:"kind"`
	InterestRate   json.RawMessage `json:"interest_rate"`
	OverdraftLimit json.RawMessage `json:"overdraft_limit"`
}

type amountRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// accounts 處理：
//   - POST /accounts  → 開戶
//   - GET  /accounts  → 列出所有帳戶
func (s *BankServer) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, codeBadRequest, err)
			return
		}
		rec, err := s.create(req)
		observability.RecordLedgerOp("create", bank.Code(err))
		if err != nil {
			writeErr(w, bank.Code(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, receiptBody{OK: true, Receipt: rec})
		s.afterChange()

	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "accounts": s.Ledger.List()})
	default:
		methodNotAllowed(w)
	}
}

// create 將請求轉為 bank.CreateInput；表單上每個欄位都必填，利率與透支額度除外。
func (s *BankServer) create(req createRequest) (bank.Receipt, error) {
	balance, err := amountField("balance", req.Balance)
	if err != nil {
		return bank.Receipt{}, err
	}
	if !balance.Valid {
		return bank.Receipt{}, fmt.Errorf("%w: balance", bank.ErrMissingField)
	}
	kind, err := bank.ParseKind(req.Kind)
	if err != nil {
		return bank.Receipt{}, err
	}
	rate, err := amountField("interest_rate", req.InterestRate)
	if err != nil {
		return bank.Receipt{}, err
	}
	limit, err := amountField("overdraft_limit", req.OverdraftLimit)
	if err != nil {
		return bank.Receipt{}, err
	}
	return s.Ledger.Create(bank.CreateInput{
		ID:             req.ID,
		Owner:          req.Owner,
		Balance:        balance.Decimal,
		Kind:           kind,
		InterestRate:   rate,
		OverdraftLimit: limit,
	})
}

// accountSubroutes 處理子路徑：
//
//	GET  /accounts/{id}           → 查詢帳戶
//	POST /accounts/{id}/deposit   → 存款
//	POST /accounts/{id}/withdraw  → 提款
//	POST /accounts/{id}/interest  → 計息（僅儲蓄帳戶）
func (s *BankServer) accountSubroutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/accounts/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" || len(parts) > 2 {
		http.NotFound(w, r)
		return
	}
	id := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		a, err := s.Ledger.View(id)
		observability.RecordLedgerOp("view", bank.Code(err))
		if err != nil {
			writeErr(w, bank.Code(err), err)
			return
		}
		writeJSON(w, http.StatusOK, receiptBody{OK: true, Receipt: bank.Receipt{Account: *a, Message: a.Summary()}})
		return
	}

	op := parts[1]
	var apply func() (bank.Receipt, error)
	switch op {
	case "deposit", "withdraw":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var req amountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, codeBadRequest, err)
			return
		}
		amt, err := amountField("amount", req.Amount)
		if err == nil && !amt.Valid {
			err = fmt.Errorf("%w: amount is required", bank.ErrInvalidAmount)
		}
		if err != nil {
			observability.RecordLedgerOp(op, bank.Code(err))
			writeErr(w, bank.Code(err), err)
			return
		}
		if op == "deposit" {
			apply = func() (bank.Receipt, error) { return s.Ledger.Deposit(id, amt.Decimal) }
		} else {
			apply = func() (bank.Receipt, error) { return s.Ledger.Withdraw(id, amt.Decimal) }
		}
	case "interest":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		apply = func() (bank.Receipt, error) { return s.Ledger.AccrueInterest(id) }
	default:
		http.NotFound(w, r)
		return
	}

	rec, err := apply()
	observability.RecordLedgerOp(op, bank.Code(err))
	if err != nil {
		writeErr(w, bank.Code(err), err)
		return
	}
	writeJSON(w, http.StatusOK, receiptBody{OK: true, Receipt: rec})
	s.afterChange()
}

// afterChange 於成功變更後寫入快照；失敗只記錄 log，不影響已回傳的結果。
// 寫入逐一執行，後取得鎖的呼叫看到的帳本必定不舊於前一個，磁碟上的快照不會倒退。
func (s *BankServer) afterChange() {
	if s.persist == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if err := s.persist(); err != nil {
		log.Printf("persist ledger: %v", err)
	}
}
