// internal/fitness/stats.go

package fitness

// Series 為趨勢圖的資料欄：x 軸為日期，兩條線分別為步數與卡路里。
type Series struct {
	Dates    []string `json:"dates"`
	Steps    []int    `json:"steps"`
	Calories []int    `json:"calories"`
}

// SeriesOf 將區間內的紀錄拆成圖表欄位；區間為空時回傳 ErrNoData。
func SeriesOf(window []Activity) (Series, error) {
	if len(window) == 0 {
		return Series{}, ErrNoData
	}
	s := Series{
		Dates:    make([]string, len(window)),
		Steps:    make([]int, len(window)),
		Calories: make([]int, len(window)),
	}
	for i, a := range window {
		s.Dates[i] = a.Date.String()
		s.Steps[i] = a.Steps
		s.Calories[i] = a.Calories
	}
	return s, nil
}

// Summary 為區間統計。
type Summary struct {
	Entries       int     `json:"entries"`
	TotalSteps    int     `json:"total_steps"`
	TotalCalories int     `json:"total_calories"`
	AvgSteps      float64 `json:"avg_steps"`
	AvgCalories   float64 `json:"avg_calories"`
}

// Summarize 計算區間內的總和與平均；空區間回傳零值。
func Summarize(window []Activity) Summary {
	var s Summary
	for _, a := range window {
		s.TotalSteps += a.Steps
		s.TotalCalories += a.Calories
	}
	s.Entries = len(window)
	if s.Entries > 0 {
		s.AvgSteps = float64(s.TotalSteps) / float64(s.Entries)
		s.AvgCalories = float64(s.TotalCalories) / float64(s.Entries)
	}
	return s
}
