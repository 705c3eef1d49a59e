package worker

import (
	"context"
	"encoding/json"
	"fmt"

	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskRecordMatches = "match:record"
)

// MatchRecord 单条匹配结果
type MatchRecord struct {
	JobID       int64  `json:"job_id"`
	WorkerID    int64  `json:"worker_id"`
	Score       int32  `json:"score"`
	Explanation string `json:"explanation"`
}

// PayloadRecordMatches 匹配结果落库任务载荷，一个批次对应一次排序
type PayloadRecordMatches struct {
	BatchID uuid.UUID     `json:"batch_id"`
	Matches []MatchRecord `json:"matches"`
}

// DistributeTaskRecordMatches 分发匹配结果落库任务
func (d *RedisTaskDistributor) DistributeTaskRecordMatches(
	ctx context.Context,
	payload *PayloadRecordMatches,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskRecordMatches, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Str("batch_id", payload.BatchID.String()).
		Int("matches", len(payload.Matches)).
		Msg("enqueued record matches task")

	return nil
}

// ProcessTaskRecordMatches 处理匹配结果落库任务
func (p *RedisTaskProcessor) ProcessTaskRecordMatches(ctx context.Context, task *asynq.Task) error {
	var payload PayloadRecordMatches
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	if len(payload.Matches) == 0 {
		log.Info().
			Str("batch_id", payload.BatchID.String()).
			Msg("empty match batch, nothing to record")
		return nil
	}

	arg := db.RecordMatchesTxParams{
		BatchID: payload.BatchID,
		Matches: make([]db.CreateMatchParams, len(payload.Matches)),
	}
	for i, m := range payload.Matches {
		arg.Matches[i] = db.CreateMatchParams{
			JobID:       m.JobID,
			WorkerID:    m.WorkerID,
			Score:       m.Score,
			Explanation: m.Explanation,
		}
	}

	result, err := p.store.RecordMatchesTx(ctx, arg)
	if err != nil {
		return fmt.Errorf("record matches: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("batch_id", payload.BatchID.String()).
		Int("recorded", len(result.Matches)).
		Msg("processed record matches task")

	return nil
}
