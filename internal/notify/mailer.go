package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// LogMailer "sends" email by logging it.  When Path is set, one line per
// message is also appended to that file (created along with its directory
// on first use).
type LogMailer struct {
	Log  *logrus.Logger
	Path string

	mu sync.Mutex
}

// NewLogMailer returns a LogMailer writing to log and path.
func NewLogMailer(log *logrus.Logger, path string) *LogMailer {
	return &LogMailer{Log: log, Path: path}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.Log.WithFields(logrus.Fields{
		"kind":    string(msg.Kind),
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email:\n" + msg.Body)

	if m.Path == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(m.Path), 0o755); err != nil {
		return fmt.Errorf("notification log dir: %w", err)
	}
	f, err := os.OpenFile(m.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open notification log: %w", err)
	}
	defer f.Close()
	line := fmt.Sprintf("%s %s to=%s subject=%q\n",
		time.Now().UTC().Format(time.RFC3339), msg.Kind, msg.To, strings.TrimSpace(msg.Subject))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write notification log: %w", err)
	}
	return nil
}
