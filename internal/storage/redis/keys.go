package redis

import "fmt"

// Key prefix for all roster data
const keyPrefix = "charroster"

// rosterKey returns the Redis key for the LIST of encoded lines of a roster
func rosterKey(name string) string {
	return fmt.Sprintf("%s:roster:%s", keyPrefix, name)
}
