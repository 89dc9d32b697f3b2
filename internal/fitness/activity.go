// internal/fitness/activity.go
//
// Package fitness 定義個人運動紀錄的領域模型：每位使用者一串依時間排序、只增不減的紀錄。
package fitness

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"desksim/internal/storage"
)

// DateLayout 為日期的文字格式，也是儲存檔內 date 欄位的格式。
const DateLayout = "2006-01-02"

// Date 為日曆日（精度到日）。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf 取 t 在其所屬時區的日期。
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate 解析 YYYY-MM-DD。
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

// String 以 YYYY-MM-DD 格式輸出日期。
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText 讓 Date 在 JSON 中以 "YYYY-MM-DD" 字串呈現。
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText 解析 "YYYY-MM-DD"；格式錯誤時回傳 ErrInvalidInput。
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Activity 為單筆運動紀錄，建立後不可變。
type Activity struct {
	Date     Date   `json:"date"`
	Steps    int    `json:"steps"`
	Calories int    `json:"calories"`
	Workout  string `json:"workout"`
}

// ParseCount 將使用者輸入轉為非負整數（步數、卡路里）。
func ParseCount(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %q", ErrInvalidInput, field, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, field)
	}
	return n, nil
}

func (a Activity) record() storage.ActivityRecord {
	return storage.ActivityRecord{
		Date:     a.Date.String(),
		Steps:    a.Steps,
		Calories: a.Calories,
		Workout:  a.Workout,
	}
}

func fromRecord(r storage.ActivityRecord) (Activity, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return Activity{}, err
	}
	return Activity{Date: date, Steps: r.Steps, Calories: r.Calories, Workout: r.Workout}, nil
}
