package id

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

var sessionRx = regexp.MustCompile(`^\d{8}-[0-9a-f]{16}$`)

// SessionID builds YYYYMMDD-<xxhash(seed) as 16 hex digits>.
func SessionID(day time.Time, seed []byte) string {
	return fmt.Sprintf("%s-%016x", day.UTC().Format("20060102"), xxhash.Sum64(seed))
}

// Seed packs a timestamp and counter into a hash seed.
func Seed(now time.Time, n uint64) []byte {
	return []byte(fmt.Sprintf("%d/%d", now.UnixNano(), n))
}

// Valid reports whether s looks like a SessionID.
func Valid(s string) bool {
	return sessionRx.MatchString(strings.TrimSpace(s))
}
