// internal/config/config.go
//
// Package config 集中解析兩個服務的環境變數設定；未設定時套用適合本機執行的預設值。
package config

import (
	"os"
	"strings"
	"time"
)

// Bank 為帳本服務的設定。
type Bank struct {
	HTTPAddress     string
	DataFile        string // 空字串表示不落地，只保留在記憶體
	ShutdownTimeout time.Duration
}

// 運動紀錄的儲存後端。
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Fitness 為運動紀錄服務的設定。
type Fitness struct {
	HTTPAddress     string
	User            string
	Store           string // StoreJSON 或 StoreSQLite
	DataDir         string
	SQLitePath      string
	ShutdownTimeout time.Duration
}

// LoadBank 讀取帳本服務的環境變數。
func LoadBank() Bank {
	return Bank{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		DataFile:        getEnvAllowEmpty("BANK_DATA_FILE", "bank.json"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// LoadFitness 讀取運動紀錄服務的環境變數。不認得的 FITNESS_STORE 值退回 json。
func LoadFitness() Fitness {
	cfg := Fitness{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8081"),
		User:            getEnv("FITNESS_USER", "default_user"),
		Store:           strings.ToLower(getEnv("FITNESS_STORE", StoreJSON)),
		DataDir:         getEnv("FITNESS_DATA_DIR", "."),
		SQLitePath:      getEnv("FITNESS_SQLITE_PATH", "fitness.db"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if cfg.Store != StoreSQLite {
		cfg.Store = StoreJSON
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvAllowEmpty 與 getEnv 相同，但明確設為空字串時回傳空字串。
func getEnvAllowEmpty(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
