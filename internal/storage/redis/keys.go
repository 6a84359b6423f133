package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "bullscows"

// resultsKey returns the default Redis key for the result list
func resultsKey() string {
	return fmt.Sprintf("%s:results", keyPrefix)
}
