// Package requestctx はリクエストIDをcontextで受け渡す
package requestctx

import (
	"context"

	"github.com/google/uuid"
)

// HeaderRequestID リクエストIDを伝搬するHTTPヘッダー
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID リクエストIDを保持したcontextを返す
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID contextに保持されたリクエストIDを返す
// 未設定の場合は新しいUUIDを生成する
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
