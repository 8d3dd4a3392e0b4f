package ui

import "sync"

// Alerter presents a blocking notice to the user
type Alerter interface {
	Alert(msg string)
}

// NoticeBoard records alerts in order
type NoticeBoard struct {
	mu      sync.Mutex
	notices []string
}

func (n *NoticeBoard) Alert(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, msg)
}

func (n *NoticeBoard) Notices() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.notices...)
}

// Last returns the most recent alert, or "" when nothing was shown
func (n *NoticeBoard) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return ""
	}
	return n.notices[len(n.notices)-1]
}
