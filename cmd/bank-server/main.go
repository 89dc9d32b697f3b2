// cmd/bank-server/main.go

// 帳本服務：提供開戶、存提款、計息與查詢的 HTTP API。
// 啟動時嘗試載入 JSON 快照，之後每次成功變更都會重寫快照；BANK_DATA_FILE 設為空字串則只保留在記憶體。
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"desksim/internal/bank"
	"desksim/internal/config"
	"desksim/internal/server"
	"desksim/internal/storage"
)

func main() {
	cfg := config.LoadBank()

	ledger := bank.NewLedger()

	var persist func() error
	if cfg.DataFile != "" {
		// 快照不存在時以空帳本啟動；內容損毀則拒絕啟動，避免下次寫入時覆蓋掉原檔。
		snap, err := storage.LoadSnapshot(cfg.DataFile)
		switch {
		case err == nil:
			if err := ledger.Restore(snap); err != nil {
				log.Fatalf("restore %s: %v", cfg.DataFile, err)
			}
			log.Printf("restored %d accounts from %s", len(snap.Accounts), cfg.DataFile)
		case errors.Is(err, fs.ErrNotExist):
		default:
			log.Fatalf("load %s: %v", cfg.DataFile, err)
		}
		persist = func() error {
			return storage.SaveSnapshot(cfg.DataFile, ledger.Snapshot())
		}
	}

	s := server.NewBankServer(ledger, persist)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.NewHTTPServer(cfg.HTTPAddress, s.Router()), cfg.ShutdownTimeout); err != nil {
		log.Fatalf("bank server: %v", err)
	}

	// 結束前再保存一次
	if persist != nil {
		if err := persist(); err != nil {
			log.Printf("persist ledger: %v", err)
		}
	}
}
