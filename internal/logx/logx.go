// internal/logx/logx.go
package logx

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New builds the process logger: timestamped text to console, duplicated to
// filePath when one is given. The returned closer flushes the file sink.
// The logger is passed explicitly into every component; there is no
// package-level logger anywhere in the tree.
func New(console io.Writer, filePath string) (*logrus.Logger, func(), error) {
	l := logrus.New()
	l.SetOutput(console)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	if filePath == "" {
		return l, func() {}, nil
	}
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", filePath)
	}
	l.SetOutput(io.MultiWriter(console, f))
	return l, func() { _ = f.Close() }, nil
}
