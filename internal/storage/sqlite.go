// internal/storage/sqlite.go
//
// SQLiteActivityStore 為運動紀錄的另一種後端：單一 SQLite 檔案保存所有使用者。
// 語意與 JSONActivityStore 相同：Load 依插入順序回傳，Save 以交易整批覆寫該使用者資料。
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteActivityStore 以 SQLite 保存運動紀錄。
type SQLiteActivityStore struct {
	db *sql.DB
}

// NewSQLiteActivityStore 開啟（或建立）path 指定的 SQLite 資料庫並建立資料表。
// path 可為 ":memory:"（測試用，關閉後資料消失）。
func NewSQLiteActivityStore(ctx context.Context, path string) (*SQLiteActivityStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite 同時只允許一個寫入者；:memory: 也必須固定同一條連線。
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	s := &SQLiteActivityStore{db: db}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteActivityStore) createTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS activities (
			user_name TEXT    NOT NULL,
			seq       INTEGER NOT NULL,
			date      TEXT    NOT NULL,
			steps     INTEGER NOT NULL,
			calories  INTEGER NOT NULL,
			workout   TEXT    NOT NULL,
			PRIMARY KEY (user_name, seq)
		)
	`)
	return err
}

// Load 依 seq 順序讀出使用者的全部紀錄；沒有資料時回傳空切片與 nil。
func (s *SQLiteActivityStore) Load(ctx context.Context, user string) ([]ActivityRecord, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, steps, calories, workout
		FROM activities
		WHERE user_name = ?
		ORDER BY seq
	`, user)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var recs []ActivityRecord
	for rows.Next() {
		var r ActivityRecord
		if err := rows.Scan(&r.Date, &r.Steps, &r.Calories, &r.Workout); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Save 在單一交易內刪除使用者舊資料並寫入 recs；任何一步失敗都會 rollback。
func (s *SQLiteActivityStore) Save(ctx context.Context, user string, recs []ActivityRecord) error {
	if user == "" {
		return fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE user_name = ?`, user); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO activities (user_name, seq, date, steps, calories, workout)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range recs {
		if _, err := stmt.ExecContext(ctx, user, i, r.Date, r.Steps, r.Calories, r.Workout); err != nil {
			return fmt.Errorf("insert activity %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Close 關閉資料庫連線。
func (s *SQLiteActivityStore) Close() error {
	return s.db.Close()
}
