package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskRecordMatches 分发匹配结果落库任务
	DistributeTaskRecordMatches(
		ctx context.Context,
		payload *PayloadRecordMatches,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
