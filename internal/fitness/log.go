// internal/fitness/log.go

package fitness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"desksim/internal/observability"
	"desksim/internal/storage"
)

// 趨勢圖使用的區間長度（最近 N 筆）。
const (
	WeeklyWindow  = 7
	MonthlyWindow = 30
)

// Store 保存單一使用者的完整紀錄。Load 在資料不存在時應回傳空切片與 nil。
// storage.JSONActivityStore 與 storage.SQLiteActivityStore 皆滿足此介面。
type Store interface {
	Load(ctx context.Context, user string) ([]storage.ActivityRecord, error)
	Save(ctx context.Context, user string, recs []storage.ActivityRecord) error
}

// Log 為一位使用者的運動紀錄：只能附加，插入順序即時間順序。
// 每次成功 Add 後整串紀錄都會重寫回 Store。
type Log struct {
	name  string
	store Store
	now   func() time.Time

	mu   sync.Mutex
	acts []Activity
}

// Option 調整 Log 的建構參數。
type Option func(*Log)

// WithClock 指定取得「今天」的時鐘，測試用。
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// NewLog 建立使用者 name 的空白紀錄；需呼叫 Load 才會讀入既有資料。
func NewLog(name string, store Store, opts ...Option) *Log {
	l := &Log{name: name, store: store, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name 回傳使用者名稱（也是儲存時的 key）。
func (l *Log) Name() string { return l.name }

// Load 從 Store 讀入全部紀錄並取代記憶體內容。
// 尚無資料視為空紀錄；資料損毀則回傳錯誤，記憶體內容不變。
func (l *Log) Load(ctx context.Context) error {
	recs, err := l.store.Load(ctx, l.name)
	if err != nil {
		return fmt.Errorf("load activities for %s: %w", l.name, err)
	}
	acts := make([]Activity, 0, len(recs))
	for i, r := range recs {
		a, err := fromRecord(r)
		if err != nil {
			return fmt.Errorf("load activities for %s: record %d: %w", l.name, i, err)
		}
		acts = append(acts, a)
	}
	l.mu.Lock()
	l.acts = acts
	l.mu.Unlock()
	return nil
}

// Add 以今天的日期建立一筆紀錄、附加到尾端並重寫 Store。
// 步數或卡路里為負時回傳 ErrInvalidInput。寫入失敗時撤回這筆附加並回傳錯誤。
func (l *Log) Add(ctx context.Context, steps, calories int, workout string) (Activity, error) {
	if steps < 0 || calories < 0 {
		return Activity{}, ErrInvalidInput
	}
	a := Activity{
		Date:     DateOf(l.now()),
		Steps:    steps,
		Calories: calories,
		Workout:  workout,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.acts = append(l.acts, a)
	if err := l.persistLocked(ctx); err != nil {
		l.acts = l.acts[:len(l.acts)-1]
		return Activity{}, err
	}
	observability.RecordActivityAdded()
	return a, nil
}

// AddRaw 與 Add 相同，但接受表單輸入的原始文字。
func (l *Log) AddRaw(ctx context.Context, stepsRaw, caloriesRaw, workout string) (Activity, error) {
	steps, err := ParseCount("steps", stepsRaw)
	if err != nil {
		return Activity{}, err
	}
	calories, err := ParseCount("calories", caloriesRaw)
	if err != nil {
		return Activity{}, err
	}
	return l.Add(ctx, steps, calories, workout)
}

// Persist 將整串紀錄覆寫回 Store。
func (l *Log) Persist(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.persistLocked(ctx)
}

func (l *Log) persistLocked(ctx context.Context) error {
	recs := make([]storage.ActivityRecord, len(l.acts))
	for i, a := range l.acts {
		recs[i] = a.record()
	}
	err := l.store.Save(ctx, l.name, recs)
	observability.RecordStoreWrite(err)
	if err != nil {
		return fmt.Errorf("save activities for %s: %w", l.name, err)
	}
	return nil
}

// Recent 回傳最後 n 筆紀錄（依原順序）；不足 n 筆時回傳全部，n <= 0 回傳空切片。
// 回傳的是拷貝。
func (l *Log) Recent(n int) []Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		return []Activity{}
	}
	start := max(len(l.acts)-n, 0)
	out := make([]Activity, len(l.acts)-start)
	copy(out, l.acts[start:])
	return out
}

// Weekly 回傳最近 7 筆。
func (l *Log) Weekly() []Activity { return l.Recent(WeeklyWindow) }

// Monthly 回傳最近 30 筆。
func (l *Log) Monthly() []Activity { return l.Recent(MonthlyWindow) }

// All 回傳全部紀錄的拷貝。
func (l *Log) All() []Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Activity, len(l.acts))
	copy(out, l.acts)
	return out
}

// Len 回傳紀錄筆數。
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.acts)
}
