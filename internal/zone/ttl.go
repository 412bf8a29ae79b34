package zone

import "strconv"

// MinTTL is the lowest TTL in seconds the hosting API accepts.
const MinTTL = 30

// FloorTTL clamps numeric TTLs below MinTTL. The second return reports that
// clamping happened so the caller can warn with the offending value.
// Non-numeric input passes through untouched.
func FloorTTL(ttl string) (string, bool) {
	n, err := strconv.Atoi(ttl)
	if err != nil || n >= MinTTL {
		return ttl, false
	}
	return strconv.Itoa(MinTTL), true
}
