package application

import "sync"

// DefaultMessageLimit メッセージログが保持する最大件数
const DefaultMessageLimit = 500

// MessageService 画面に表示する診断メッセージの追記専用ログ
type MessageService interface {
	// Add メッセージを末尾に追加（上限を超えた場合は最も古いものから破棄）
	Add(message string)
	// Messages 現在のメッセージのコピーを取得
	Messages() []string
	// Clear 全メッセージを削除
	Clear()
}

// messageServiceImpl MessageServiceの実装（プロセス内でのみ保持）
type messageServiceImpl struct {
	mu       sync.RWMutex
	limit    int
	messages []string
}

// NewMessageService DefaultMessageLimit件まで保持するMessageServiceを作成
func NewMessageService() MessageService {
	return NewMessageServiceWithLimit(DefaultMessageLimit)
}

// NewMessageServiceWithLimit 最大limit件まで保持するMessageServiceを作成
// limitが0以下の場合はDefaultMessageLimitを使用する
func NewMessageServiceWithLimit(limit int) MessageService {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	return &messageServiceImpl{
		limit:    limit,
		messages: []string{},
	}
}

func (s *messageServiceImpl) Add(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) >= s.limit {
		// 先頭を詰めて再利用する
		n := copy(s.messages, s.messages[len(s.messages)-s.limit+1:])
		s.messages = s.messages[:n]
	}
	s.messages = append(s.messages, message)
}

func (s *messageServiceImpl) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *messageServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []string{}
}
