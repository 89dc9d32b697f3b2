// internal/storage/jsonstore.go
//
// 提供 JSON 檔案的序列化與反序列化實作：
//   - 帳本快照 (LedgerSnapshot)：LoadSnapshot / SaveSnapshot。
//   - 運動紀錄 (JSONActivityStore)：每位使用者一個 <user>_data.json，內容為 JSON 陣列。
//
// 所有寫入皆採「原子寫入」：先寫同目錄下的暫存檔，再以 rename() 取代原檔，
// 寫到一半中斷時原檔不會損壞。每次寫入各自建立暫存檔，同時寫入也不會互相踩到。
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidUser 代表使用者名稱不能作為檔名（空字串或含路徑字元）。
var ErrInvalidUser = errors.New("invalid user name")

// LoadSnapshot 讀取指定路徑的帳本快照。
// 檔案不存在時回傳的錯誤滿足 errors.Is(err, fs.ErrNotExist)，由呼叫端決定是否忽略。
func LoadSnapshot(path string) (LedgerSnapshot, error) {
	var snap LedgerSnapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}

// SaveSnapshot 設定 Meta 後以原子方式寫入帳本快照。
func SaveSnapshot(path string, snap LedgerSnapshot) error {
	snap.Meta.Storage = "json_snapshot"
	snap.Meta.Timestamp = time.Now()
	if snap.Meta.Version == 0 {
		snap.Meta.Version = 1
	}
	return writeJSONAtomic(path, snap, "  ")
}

// writeJSONAtomic 將 v 以縮排 JSON 寫入 path 同目錄下的 <base>.*.tmp，完成後 rename 取代正式檔案。
func writeJSONAtomic(path string, v any, indent string) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// JSONActivityStore 以「每位使用者一個 JSON 檔」保存運動紀錄。
// 每次 Save 都覆寫整個檔案。
type JSONActivityStore struct {
	Dir string
}

// NewJSONActivityStore 建立以 dir 為資料目錄的 store；dir 為空時使用目前工作目錄。
func NewJSONActivityStore(dir string) *JSONActivityStore {
	if dir == "" {
		dir = "."
	}
	return &JSONActivityStore{Dir: dir}
}

// Path 回傳使用者資料檔路徑：<Dir>/<user>_data.json。
func (s *JSONActivityStore) Path(user string) (string, error) {
	if user == "" || strings.ContainsAny(user, `/\`) || user == "." || user == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	return filepath.Join(s.Dir, user+"_data.json"), nil
}

// Load 讀取使用者的全部紀錄；檔案不存在視為空紀錄，不回傳錯誤。
func (s *JSONActivityStore) Load(_ context.Context, user string) ([]ActivityRecord, error) {
	path, err := s.Path(user)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []ActivityRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return recs, nil
}

// Save 以 recs 覆寫使用者資料檔（縮排 4 格）。
func (s *JSONActivityStore) Save(_ context.Context, user string, recs []ActivityRecord) error {
	path, err := s.Path(user)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []ActivityRecord{}
	}
	return writeJSONAtomic(path, recs, "    ")
}
