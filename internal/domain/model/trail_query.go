package model

import (
	"sort"
)

// TrailQuery トレイル一覧の絞り込み・並び替え条件
type TrailQuery struct {
	CityCode      string `json:"city_code" form:"-"`           // 取得対象の都市コード
	Type          int    `json:"type" form:"type"`             // 完全一致で絞り込む種別
	SortField     string `json:"sort" form:"sort"`             // 並び替えフィールド
	Direction     string `json:"direction" form:"direction"`   // "asc"なら昇順、それ以外は降順
	RoundTripOnly bool   `json:"round_trip" form:"round_trip"` // trueなら周回コースのみ
}

// Apply 種別・周回条件で絞り込み、指定フィールドで安定ソートした新しいスライスを返す
func (q TrailQuery) Apply(trails []Trail) []Trail {
	filtered := make([]Trail, 0, len(trails))
	for _, trail := range trails {
		if trail.Type != q.Type {
			continue
		}
		if q.RoundTripOnly && !trail.IsRoundTrip() {
			continue
		}
		filtered = append(filtered, trail)
	}

	SortTrails(filtered, q.SortField, q.Direction)
	return filtered
}

// SortTrails 指定フィールドで安定ソートする
// 未知のフィールドの場合は並び順を変更しない
func SortTrails(trails []Trail, field, direction string) {
	key, ok := trailSortKeys[field]
	if !ok {
		return
	}

	sort.SliceStable(trails, func(i, j int) bool {
		a, b := key(&trails[i]), key(&trails[j])
		if direction == SortAsc {
			return a.less(b)
		}
		return b.less(a)
	})
}

// sortKey 数値・文字列いずれかの比較キー
type sortKey struct {
	num   float64
	str   string
	isStr bool
}

func (k sortKey) less(other sortKey) bool {
	if k.isStr {
		return k.str < other.str
	}
	return k.num < other.num
}

func numKey(v float64) sortKey { return sortKey{num: v} }
func strKey(v string) sortKey  { return sortKey{str: v, isStr: true} }

var trailSortKeys = map[string]func(t *Trail) sortKey{
	"id":        func(t *Trail) sortKey { return numKey(float64(t.ID)) },
	"code":      func(t *Trail) sortKey { return strKey(t.Code) },
	"name":      func(t *Trail) sortKey { return strKey(t.Name) },
	"city_code": func(t *Trail) sortKey { return strKey(t.CityCode) },
	"type":      func(t *Trail) sortKey { return numKey(float64(t.Type)) },
	"distance":  func(t *Trail) sortKey { return numKey(t.Distance) },
	"elevation": func(t *Trail) sortKey { return numKey(t.Elevation) },
	"duration":  func(t *Trail) sortKey { return numKey(float64(t.Duration)) },
}
