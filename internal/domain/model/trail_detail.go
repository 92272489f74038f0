package model

// TrailDetail トレイルの説明・天気・画像などの付随情報
type TrailDetail struct {
	ID          int          `json:"id"`                       // 詳細ID
	Code        string       `json:"code" validate:"required"` // 対応するトレイルのコード
	Description string       `json:"description"`              // 説明文
	Weather     *Weather     `json:"weather,omitempty"`        // 天気情報
	Images      []TrailImage `json:"images" validate:"dive"`   // ギャラリー画像
}

// Weather トレイル周辺の天気
type Weather struct {
	Summary     string  `json:"summary"`
	Temperature float64 `json:"temperature"` // 摂氏
	Wind        float64 `json:"wind"`        // m/s
}

// TrailImage ギャラリー表示用の画像
type TrailImage struct {
	Src     string `json:"src" validate:"required"`
	Thumb   string `json:"thumb"`
	Caption string `json:"caption,omitempty"`
}
