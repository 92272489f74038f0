package model

// SortDirection 一覧の並び順
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TrailTypeConstants トレイル種別の定数
const (
	TrailTypeWalking  = 1
	TrailTypeHiking   = 2
	TrailTypeMountain = 3
	TrailTypeCycling  = 4
)

// TrailTypeNameMap 種別IDから表示名へのマッピング
var TrailTypeNameMap = map[int]string{
	TrailTypeWalking:  "walking",
	TrailTypeHiking:   "hiking",
	TrailTypeMountain: "mountain",
	TrailTypeCycling:  "cycling",
}

// GetTrailTypeName 種別IDの表示名を取得（未知の種別は"unknown"）
func GetTrailTypeName(trailType int) string {
	if name, exists := TrailTypeNameMap[trailType]; exists {
		return name
	}
	return "unknown"
}

// SortableTrailFields 並び替えに使用できるフィールド名
var SortableTrailFields = []string{
	"id", "code", "name", "city_code", "type", "distance", "elevation", "duration",
}
