// cmd/fitness-server/main.go

// 運動紀錄服務：單一使用者的紀錄新增、列表與最近 7 / 30 筆統計。
// 儲存後端由 FITNESS_STORE 決定（json：<user>_data.json；sqlite：單一資料庫檔）。
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"desksim/internal/config"
	"desksim/internal/fitness"
	"desksim/internal/server"
	"desksim/internal/storage"
)

func main() {
	cfg := config.LoadFitness()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store fitness.Store
	switch cfg.Store {
	case config.StoreSQLite:
		st, err := storage.NewSQLiteActivityStore(ctx, cfg.SQLitePath)
		if err != nil {
			log.Fatalf("open activity store: %v", err)
		}
		defer st.Close()
		store = st
	default:
		store = storage.NewJSONActivityStore(cfg.DataDir)
	}

	activityLog := fitness.NewLog(cfg.User, store)
	// 尚無資料時以空紀錄啟動；資料損毀則拒絕啟動。
	if err := activityLog.Load(ctx); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("loaded %d activities for %s (%s store)", activityLog.Len(), cfg.User, cfg.Store)

	s := server.NewFitnessServer(activityLog)
	if err := server.Run(ctx, server.NewHTTPServer(cfg.HTTPAddress, s.Router()), cfg.ShutdownTimeout); err != nil {
		log.Fatalf("fitness server: %v", err)
	}
}
