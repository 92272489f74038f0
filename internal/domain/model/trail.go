package model

import (
	"github.com/paulmach/orb"
)

// Trail 複数のセグメントから構成されるトレイル
type Trail struct {
	ID        int            `json:"id" validate:"gte=0"`      // トレイルID
	Code      string         `json:"code"`                     // トレイルコード（詳細情報と1:1で対応）
	Name      string         `json:"name" validate:"required"` // トレイル名
	CityCode  string         `json:"city_code"`                // 所属する都市コード
	Type      int            `json:"type" validate:"gte=0"`    // 種別
	Segments  []Segment      `json:"segments" validate:"dive"` // 順序付きセグメント
	Distance  float64        `json:"distance"`                 // 総距離（km、MergeSegmentsで算出）
	Elevation float64        `json:"elevation"`                // 総獲得標高（m、MergeSegmentsで算出）
	Duration  int            `json:"duration"`                 // 所要時間（分、MergeSegmentsで算出）
	Path      orb.LineString `json:"path,omitempty"`           // セグメントを連結した経路
}

// Segment トレイルの区間
type Segment struct {
	Distance  float64        `json:"distance" validate:"gte=0"` // 区間距離（km）
	Elevation float64        `json:"elevation"`                 // 区間の獲得標高（m）
	Duration  int            `json:"duration" validate:"gte=0"` // 区間の所要時間（分）
	Blaze     string         `json:"blaze,omitempty"`           // 道標の色
	Points    orb.LineString `json:"points,omitempty"`          // [[lng, lat], ...]
}

// MergeSegments セグメントの距離・標高・時間を合算し、経路を1本に連結する
// 合計値は毎回セグメントから再計算するため、複数回呼び出しても結果は変わらない
func (t *Trail) MergeSegments() {
	var distance, elevation float64
	var duration int
	path := orb.LineString{}

	for _, seg := range t.Segments {
		distance += seg.Distance
		elevation += seg.Elevation
		duration += seg.Duration

		for i, p := range seg.Points {
			// 前の区間の終点と同じ始点は重複させない
			if i == 0 && len(path) > 0 && path[len(path)-1].Equal(p) {
				continue
			}
			path = append(path, p)
		}
	}

	t.Distance = distance
	t.Elevation = elevation
	t.Duration = duration
	if len(path) > 0 {
		t.Path = path
	} else {
		t.Path = nil
	}
}

// IsRoundTrip 最初のセグメントの始点と最後のセグメントの終点が一致する場合にtrue
func (t *Trail) IsRoundTrip() bool {
	start, ok := t.startPoint()
	if !ok {
		return false
	}
	end, ok := t.endPoint()
	if !ok {
		return false
	}
	return start.Equal(end)
}

// Bound トレイル全体を囲む境界ボックス
func (t *Trail) Bound() orb.Bound {
	var ls orb.LineString
	for _, seg := range t.Segments {
		ls = append(ls, seg.Points...)
	}
	return ls.Bound()
}

func (t *Trail) startPoint() (orb.Point, bool) {
	if len(t.Segments) == 0 || len(t.Segments[0].Points) == 0 {
		return orb.Point{}, false
	}
	return t.Segments[0].Points[0], true
}

func (t *Trail) endPoint() (orb.Point, bool) {
	if len(t.Segments) == 0 {
		return orb.Point{}, false
	}
	last := t.Segments[len(t.Segments)-1].Points
	if len(last) == 0 {
		return orb.Point{}, false
	}
	return last[len(last)-1], true
}
