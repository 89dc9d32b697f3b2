// internal/server/listen.go
//
// HTTP 伺服器的建立與優雅關閉，兩個服務共用。
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

// NewHTTPServer 以固定的逾時設定包裝 handler。
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run 啟動 srv 並阻塞到 ctx 結束，之後在 shutdownTimeout 內優雅關閉。
// 監聽失敗時立即回傳錯誤。
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
