// internal/fitness/log_test.go

package fitness

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"desksim/internal/storage"
)

// memStore 為測試用的記憶體 Store；failSave 設定後每次 Save 都回傳錯誤。
type memStore struct {
	data     map[string][]storage.ActivityRecord
	saves    int
	failSave error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]storage.ActivityRecord)}
}

func (m *memStore) Load(_ context.Context, user string) ([]storage.ActivityRecord, error) {
	return m.data[user], nil
}

func (m *memStore) Save(_ context.Context, user string, recs []storage.ActivityRecord) error {
	m.saves++
	if m.failSave != nil {
		return m.failSave
	}
	m.data[user] = append([]storage.ActivityRecord(nil), recs...)
	return nil
}

func fixedClock(day int) func() time.Time {
	return func() time.Time { return time.Date(2026, time.October, day, 21, 30, 0, 0, time.Local) }
}

// 每天一筆，共 n 筆；步數 = 第幾筆，方便檢查順序。
func seed(t *testing.T, l *Log, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := l.Add(context.Background(), i, i*10, fmt.Sprintf("w%d", i))
		require.NoError(t, err)
	}
}

func steps(acts []Activity) []int {
	out := make([]int, len(acts))
	for i, a := range acts {
		out[i] = a.Steps
	}
	return out
}

func TestAddStampsDateAndPersists(t *testing.T) {
	st := newMemStore()
	l := NewLog("alice", st, WithClock(fixedClock(14)))

	a, err := l.Add(context.Background(), 8000, 320, "run")
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2026, Month: time.October, Day: 14}, a.Date)
	require.Equal(t, 1, st.saves)
	require.Equal(t, []storage.ActivityRecord{
		{Date: "2026-10-14", Steps: 8000, Calories: 320, Workout: "run"},
	}, st.data["alice"])

	// 每次附加都整批重寫
	_, err = l.Add(context.Background(), 100, 5, "walk")
	require.NoError(t, err)
	require.Equal(t, 2, st.saves)
	require.Len(t, st.data["alice"], 2)
}

func TestAddRejectsNegative(t *testing.T) {
	st := newMemStore()
	l := NewLog("alice", st)
	_, err := l.Add(context.Background(), -1, 0, "run")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = l.Add(context.Background(), 0, -1, "run")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, l.Len())
	require.Zero(t, st.saves)
}

func TestAddRawParsesInput(t *testing.T) {
	l := NewLog("alice", newMemStore(), WithClock(fixedClock(1)))

	a, err := l.AddRaw(context.Background(), " 1200 ", "80", "yoga")
	require.NoError(t, err)
	require.Equal(t, 1200, a.Steps)
	require.Equal(t, 80, a.Calories)

	for _, tc := range [][2]string{{"abc", "1"}, {"1", ""}, {"1.5", "1"}, {"-3", "1"}, {"1", "-1"}} {
		_, err := l.AddRaw(context.Background(), tc[0], tc[1], "x")
		require.ErrorIs(t, err, ErrInvalidInput, "input=%v", tc)
	}
	require.Equal(t, 1, l.Len())
}

func TestAddRollsBackWhenSaveFails(t *testing.T) {
	st := newMemStore()
	l := NewLog("alice", st)
	seed(t, l, 2)

	st.failSave = errors.New("disk full")
	_, err := l.Add(context.Background(), 3, 3, "x")
	require.ErrorContains(t, err, "disk full")
	require.Equal(t, []int{1, 2}, steps(l.All()))
}

func TestRecentShorterThanWindow(t *testing.T) {
	l := NewLog("alice", newMemStore())
	seed(t, l, 5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, steps(l.Weekly()))
	require.Equal(t, []int{1, 2, 3, 4, 5}, steps(l.Monthly()))
}

func TestRecentLongerThanWindow(t *testing.T) {
	l := NewLog("alice", newMemStore())
	seed(t, l, 40)
	require.Equal(t, []int{34, 35, 36, 37, 38, 39, 40}, steps(l.Weekly()))

	monthly := l.Monthly()
	require.Len(t, monthly, 30)
	require.Equal(t, 11, monthly[0].Steps)
	require.Equal(t, 40, monthly[29].Steps)
}

func TestRecentEdgeCases(t *testing.T) {
	l := NewLog("alice", newMemStore())
	require.Empty(t, l.Weekly())
	seed(t, l, 3)
	require.Empty(t, l.Recent(0))
	require.Empty(t, l.Recent(-2))
	require.Equal(t, []int{3}, steps(l.Recent(1)))
}

// Recent 回傳拷貝，修改它不影響紀錄。
func TestRecentReturnsCopy(t *testing.T) {
	l := NewLog("alice", newMemStore())
	seed(t, l, 3)
	w := l.Weekly()
	w[0].Steps = 999
	require.Equal(t, []int{1, 2, 3}, steps(l.All()))
}

func TestLoadAbsentStoreIsEmpty(t *testing.T) {
	l := NewLog("nobody", storage.NewJSONActivityStore(t.TempDir()))
	require.NoError(t, l.Load(context.Background()))
	require.Zero(t, l.Len())
}

func TestLoadRejectsBadDate(t *testing.T) {
	st := newMemStore()
	st.data["alice"] = []storage.ActivityRecord{{Date: "14/10/2026", Steps: 1}}
	l := NewLog("alice", st)
	require.ErrorIs(t, l.Load(context.Background()), ErrInvalidInput)
}

func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	day := 0
	clock := func() time.Time {
		day++
		return time.Date(2026, time.September, day, 8, 0, 0, 0, time.Local)
	}
	l := NewLog("alice", store, WithClock(clock))
	seed(t, l, 12)
	_, err := l.Add(ctx, 0, 0, "")
	require.NoError(t, err)
	require.NoError(t, l.Persist(ctx))

	fresh := NewLog("alice", store)
	require.NoError(t, fresh.Load(ctx))
	require.Equal(t, l.All(), fresh.All())
	require.Equal(t, "2026-09-13", fresh.All()[12].Date.String())
}

func TestPersistLoadRoundTripJSON(t *testing.T) {
	roundTrip(t, storage.NewJSONActivityStore(t.TempDir()))
}

func TestPersistLoadRoundTripSQLite(t *testing.T) {
	st, err := storage.NewSQLiteActivityStore(context.Background(), filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	defer st.Close()
	roundTrip(t, st)
}
