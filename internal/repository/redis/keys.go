package redis

import "fmt"

const ns = "domos:v1"

func KeyDomoList() string {
	return ns + ":domos"
}

func KeyDisponibilidad(domoID int64) string {
	return fmt.Sprintf("%s:domo:%d:disponibilidad", ns, domoID)
}

// PrefixRateLimit is the key prefix handed to SlidingWindowLimiter.
func PrefixRateLimit(scope string) string {
	return fmt.Sprintf("%s:rl:%s", ns, scope)
}

func ChannelAvailabilityChanged() string {
	return ns + ":disponibilidad:changed"
}
