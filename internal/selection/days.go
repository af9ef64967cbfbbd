package selection

import (
	"fmt"

	"github.com/abhisek/quizday/internal/mode"
)

// DayCount returns how many practice days a bank of bankLen records spans.
func DayCount(bankLen, perDay int) int {
	if perDay <= 0 {
		perDay = DefaultQuestionsPerDay
	}
	if bankLen <= 0 {
		return 0
	}
	return (bankLen + perDay - 1) / perDay
}

// Day describes one selectable day.
type Day struct {
	Number int
	Items  int
	Label  string
}

// Days lists every selectable day for a bank with the item count each one
// yields in mode m.
func Days(bankLen int, m mode.Mode, perDay int) []Day {
	n := DayCount(bankLen, perDay)
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		start, end := Window(bankLen, d, m, perDay)
		items := end - start
		days = append(days, Day{
			Number: d,
			Items:  items,
			Label:  fmt.Sprintf("Day %d (%d %s)", d, items, m.ItemNoun()),
		})
	}
	return days
}
