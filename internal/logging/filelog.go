package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ReqLogFile = "reqLog.log"
	ErrLogFile = "errLog.log"
)

// FileLogger appends tab-separated audit lines to per-concern log files:
// one for every request, one for errors. Each line carries a timestamp and
// a random identifier. Not part of the API contract.
type FileLogger struct {
	dir string
	mu  sync.Mutex
}

func NewFileLogger(dir string) *FileLogger {
	return &FileLogger{dir: dir}
}

func (f *FileLogger) Append(fileName, message string) error {
	line := fmt.Sprintf("%s\t%s\t%s\n",
		time.Now().Format("20060102\t15:04:05"),
		uuid.NewString(),
		message,
	)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(f.dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(line)
	return err
}

func (f *FileLogger) Request(method, url, origin string) {
	_ = f.Append(ReqLogFile, fmt.Sprintf("%s\t%s\t%s", method, url, origin))
}

func (f *FileLogger) Error(message string) {
	_ = f.Append(ErrLogFile, message)
}
