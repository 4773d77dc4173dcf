package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sitedoctor/internal/doctor"
)

const flashKeyPrefix = "flash:session:"

// payload is the wire shape of one flashed notice.
type payload struct {
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
}

// RedisStore is the production flash store. Notices live in a per-session
// list with a TTL, so abandoned sessions clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client; lifecycle stays with the caller.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Push appends notices to the session's flash list.
func (s *RedisStore) Push(ctx context.Context, sessionID string, notices []doctor.Notice) error {
	if len(notices) == 0 {
		return nil
	}

	key := flashKeyPrefix + sessionID
	values := make([]any, 0, len(notices))
	for _, n := range notices {
		raw, err := json.Marshal(payload{
			Severity: int(n.Severity),
			Message:  n.Message,
			Detail:   n.Detail,
		})
		if err != nil {
			return fmt.Errorf("encode notice: %w", err)
		}
		values = append(values, raw)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push flash notices: %w", err)
	}
	return nil
}

// Pop drains and returns the session's flash list in push order.
func (s *RedisStore) Pop(ctx context.Context, sessionID string) ([]doctor.Notice, error) {
	key := flashKeyPrefix + sessionID

	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("pop flash notices: %w", err)
	}

	raws := rangeCmd.Val()
	notices := make([]doctor.Notice, 0, len(raws))
	for _, raw := range raws {
		var p payload
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode notice: %w", err)
		}
		notices = append(notices, doctor.Notice{
			Severity: doctor.Severity(p.Severity),
			Message:  p.Message,
			Detail:   p.Detail,
		})
	}
	return notices, nil
}
