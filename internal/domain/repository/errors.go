package repository

import "errors"

var (
	// ErrTransport 通信エラー、またはステータスコードが想定外
	ErrTransport = errors.New("transport failure")
	// ErrNotFound 対象が存在しない（HTTP 404）
	ErrNotFound = errors.New("not found")
	// ErrMalformedPayload レスポンスのデコードまたは検証に失敗
	ErrMalformedPayload = errors.New("malformed payload")
)
