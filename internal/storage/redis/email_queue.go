package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/pkg/e"
)

// EmailQueue buffers outbound email jobs between the dispatcher and the
// courier worker, so email latency never touches the request path.
type EmailQueue struct {
	client *goredis.Client
	key    string
}

func NewEmailQueue(client *goredis.Client, key string) *EmailQueue {
	return &EmailQueue{client: client, key: key}
}

func (q *EmailQueue) Enqueue(ctx context.Context, job domain.EmailJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EmailQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.EmailJob, error) {
	var job domain.EmailJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return job, e.ErrQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, err
	}
	return job, nil
}
