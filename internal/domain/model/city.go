package model

// City トレイルを絞り込むための都市
type City struct {
	ID     int    `json:"id"`                       // 都市ID
	Name   string `json:"name" validate:"required"` // 表示名
	Code   string `json:"code" validate:"required"` // 都市コード（トレイル一覧取得のキー）
	Active bool   `json:"active"`                   // 有効フラグ
}

// FilterActiveCities 有効な都市のみをサーバーの返却順のまま返す
func FilterActiveCities(cities []City) []City {
	active := make([]City, 0, len(cities))
	for _, city := range cities {
		if city.Active {
			active = append(active, city)
		}
	}
	return active
}
