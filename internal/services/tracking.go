package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const trackingPrefix = "SWG"

// newTrackingNumber builds a human-readable tracking number: fixed prefix,
// base36 millisecond timestamp, 8 random hex characters. Collisions are
// already negligible; the order engine still verifies against existing
// orders and regenerates before commit.
func newTrackingNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", trackingPrefix, ts, random)
}
