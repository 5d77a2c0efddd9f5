package helpers

import "time"

const DateLayout = "2006-01-02"

// Today is the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

func IsPastDate(date string) bool {
	return date < Today()
}
