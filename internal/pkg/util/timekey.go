package util

import (
	"fmt"
	"time"
)

// DayKey 返回 UTC 日期键，格式 YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// YesterdayKey 返回前一天的 UTC 日期键
func YesterdayKey(t time.Time) string {
	return DayKey(t.UTC().AddDate(0, 0, -1))
}

// WeekKey 返回 ISO-8601 周键，格式 YYYY-W##，用于周积分重置边界
// 周一为一周开始，包含当年第一个周四的那一周为第 1 周
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
