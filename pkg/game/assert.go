package game

import (
	"fmt"
	"log"
)

// Assertf 检查程序不变量
// 条件不成立时记录 [Invariant] 日志；使用 -tags invdebug 构建时直接 panic
func Assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("[Invariant] %s", msg)
	if debugAsserts {
		panic("invariant violation: " + msg)
	}
}
