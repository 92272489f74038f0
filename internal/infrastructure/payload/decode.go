// Package payload はデータソースから受け取ったJSONを型付きレコードへ変換し、検証する
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"Trail-App/internal/domain/repository"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeList JSON配列をデコードし、要素ごとに検証する
// null の場合は空スライスを返す
func DecodeList[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON array: %v", repository.ErrMalformedPayload, err)
	}
	if items == nil {
		return []T{}, nil
	}

	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", repository.ErrMalformedPayload, i, err)
		}
	}
	return items, nil
}

// DecodeOne JSONオブジェクトをデコードして検証する
func DecodeOne[T any](data []byte) (*T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty body", repository.ErrMalformedPayload)
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON object: %v", repository.ErrMalformedPayload, err)
	}
	if err := validate.Struct(&item); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrMalformedPayload, err)
	}
	return &item, nil
}

// IsEmpty ボディが空、または null のみかどうか
func IsEmpty(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
