package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseInt64Param - читает числовой path-параметр (например, ключ заказа).
func ParseInt64Param(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("параметр %s: ожидается целое число, получено %q", name, raw)
	}
	return v, nil
}

// ParseRangeSeconds - читает границы диапазона timestampFrom/timestampTo из query.
// Обе границы обязательны и задаются в секундах unix-времени.
func ParseRangeSeconds(c *gin.Context) (from, to int64, err error) {
	return ParseRangeQuery(c, "timestampFrom", "timestampTo")
}

// ParseRangeQuery - как ParseRangeSeconds, но с произвольными именами границ.
// Перевёрнутый диапазон (from > to) не ошибка: выборка по нему просто пуста.
func ParseRangeQuery(c *gin.Context, fromName, toName string) (from, to int64, err error) {
	rawFrom := c.Query(fromName)
	rawTo := c.Query(toName)
	if rawFrom == "" || rawTo == "" {
		return 0, 0, fmt.Errorf("требуются параметры %s и %s", fromName, toName)
	}
	from, err = strconv.ParseInt(rawFrom, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: ожидается целое число, получено %q", fromName, rawFrom)
	}
	to, err = strconv.ParseInt(rawTo, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: ожидается целое число, получено %q", toName, rawTo)
	}
	return from, to, nil
}
