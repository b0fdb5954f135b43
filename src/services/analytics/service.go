package analytics

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const counterKey = "quote_events"

// Tracker records fire-and-forget form events (submit succeeded, step
// abandoned, ...) as redis hash counters keyed event:serviceType:location.
// Tracking must never fail a user-visible operation: every error is logged
// and swallowed, and a nil client turns tracking into a no-op.
type Tracker struct {
	client *redis.Client
}

func NewTracker(client *redis.Client) *Tracker {
	return &Tracker{client: client}
}

func (t *Tracker) Track(ctx context.Context, event, serviceType, location string) {
	if t == nil || t.client == nil {
		return
	}
	field := fmt.Sprintf("%s:%s:%s", event, serviceType, location)
	if err := t.client.HIncrBy(ctx, counterKey, field, 1).Err(); err != nil {
		log.Println("⚠️ analytics: failed to record event:", err)
	}
}

// Snapshot returns all counters, for the admin events view.
func (t *Tracker) Snapshot(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	if t == nil || t.client == nil {
		return out, nil
	}
	all, err := t.client.HGetAll(ctx, counterKey).Result()
	if err != nil {
		return nil, err
	}
	return parseCounters(all), nil
}

// parseCounters converts the raw hash values. A corrupt value is skipped and
// logged rather than reported as zero.
func parseCounters(raw map[string]string) map[string]int64 {
	out := map[string]int64{}
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Println("⚠️ analytics: skipping corrupt counter", field+":", err)
			continue
		}
		out[field] = n
	}
	return out
}
