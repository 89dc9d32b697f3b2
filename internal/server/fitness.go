// internal/server/fitness.go
//
// 運動紀錄的 HTTP 層：新增紀錄、列出全部、最近 7 / 30 筆的圖表資料。
package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"desksim/internal/fitness"
)

// FitnessServer 為運動紀錄的 HTTP 層；Log 的寫入（持久化）由 Log 自己負責。
type FitnessServer struct {
	Log *fitness.Log
}

// NewFitnessServer 建立運動紀錄 HTTP 伺服器。
func NewFitnessServer(l *fitness.Log) *FitnessServer {
	return &FitnessServer{Log: l}
}

// addRequest 為新增紀錄的原始輸入；步數與卡路里一律以文字交給 fitness.ParseCount 驗證。
type addRequest struct {
	Steps    string
	Calories string
	Workout  string
}

// addJSON 的數值欄位同時接受 JSON 數字與字串。
type addJSON struct {
	Steps    json.RawMessage `json:"steps"`
	Calories json.RawMessage `json:"calories"`
	Workout  string          `json:"workout"`
}

// windowBody 為 weekly / monthly 的回應內容。
type windowBody struct {
	OK      bool               `json:"ok"`
	Window  int                `json:"window"`
	Entries []fitness.Activity `json:"entries"`
	Series  fitness.Series     `json:"series"`
	Summary fitness.Summary    `json:"summary"`
}

// activities 處理：
//   - POST /activities → 新增一筆（JSON 或表單）
//   - GET  /activities → 列出全部
func (s *FitnessServer) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		req, err := decodeAddRequest(r)
		if err != nil {
			writeErr(w, codeBadRequest, err)
			return
		}
		a, err := s.Log.AddRaw(r.Context(), req.Steps, req.Calories, req.Workout)
		if err != nil {
			writeErr(w, fitness.Code(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"ok":       true,
			"message":  "Activity added successfully!",
			"activity": a,
		})
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"user":       s.Log.Name(),
			"activities": s.Log.All(),
		})
	default:
		methodNotAllowed(w)
	}
}

// decodeAddRequest 依 Content-Type 解析表單或 JSON；兩種路徑產生相同的原始文字。
// 只有本文本身無法解析時才回傳錯誤。
func decodeAddRequest(r *http.Request) (addRequest, error) {
	var req addRequest
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Steps = r.PostForm.Get("steps")
		req.Calories = r.PostForm.Get("calories")
		req.Workout = r.PostForm.Get("workout")
		return req, nil
	}
	var body addJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req, err
	}
	req.Steps, _ = rawText(body.Steps)
	req.Calories, _ = rawText(body.Calories)
	req.Workout = body.Workout
	return req, nil
}

// window 回傳處理最近 n 筆的 handler：GET /activities/weekly、/activities/monthly。
// 區間沒有任何紀錄時回傳 no_data。
func (s *FitnessServer) window(n int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		entries := s.Log.Recent(n)
		series, err := fitness.SeriesOf(entries)
		if err != nil {
			writeErr(w, fitness.Code(err), err)
			return
		}
		writeJSON(w, http.StatusOK, windowBody{
			OK:      true,
			Window:  n,
			Entries: entries,
			Series:  series,
			Summary: fitness.Summarize(entries),
		})
	}
}
