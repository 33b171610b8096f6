package moderation

import (
	"strconv"
	"time"

	"gary-bot/internal/utils"
)

// ParseDuration parses compact duration tokens like "10s", "5m" or "2h".
func ParseDuration(token string) (time.Duration, error) {
	if len(token) < 2 {
		return 0, utils.Usagef("duration must look like 10s, 5m or 2h, got %q", token)
	}

	amount, err := strconv.Atoi(token[:len(token)-1])
	if err != nil || amount <= 0 {
		return 0, utils.Usagef("duration must look like 10s, 5m or 2h, got %q", token)
	}

	switch token[len(token)-1] {
	case 's':
		return time.Duration(amount) * time.Second, nil
	case 'm':
		return time.Duration(amount) * time.Minute, nil
	case 'h':
		return time.Duration(amount) * time.Hour, nil
	default:
		return 0, utils.Usagef("unsupported duration unit %q, use s, m or h", token[len(token)-1:])
	}
}
