package email

import "sync"

// MockProvider records messages instead of sending them. Used when
// email is disabled and in tests.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Message
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(msg *Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, msg)
	return nil
}

func (p *MockProvider) Close() error {
	return nil
}

// SentCount returns how many messages were recorded.
func (p *MockProvider) SentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Sent)
}
