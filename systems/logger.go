package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the logger used by the gameplay systems. A nil logger
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
