package logger

import (
	"fmt"
	"strings"
)

// SQLWriter 实现 gorm logger.Writer，把 SQL 日志转到 zap 的 gorm 子 logger
type SQLWriter struct{}

func (SQLWriter) Printf(format string, args ...interface{}) {
	sql.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GetWriter gorm 使用的日志输出
func GetWriter() SQLWriter {
	return SQLWriter{}
}
