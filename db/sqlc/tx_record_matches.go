package db

import (
	"context"

	"github.com/google/uuid"
)

// RecordMatchesTxParams 一次排序运行产生的待落库匹配记录
// 同一批记录共享一个 BatchID，便于按批次追溯
type RecordMatchesTxParams struct {
	BatchID uuid.UUID           `json:"batch_id"`
	Matches []CreateMatchParams `json:"matches"`
}

// RecordMatchesTxResult 落库结果
type RecordMatchesTxResult struct {
	Matches []Match `json:"matches"`
}

// RecordMatchesTx 在单个事务内写入一次排序的全部匹配记录
// 要么整批成功，要么整批回滚，不落半截批次
func (store *SQLStore) RecordMatchesTx(ctx context.Context, arg RecordMatchesTxParams) (RecordMatchesTxResult, error) {
	var result RecordMatchesTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		result.Matches = make([]Match, 0, len(arg.Matches))

		for _, params := range arg.Matches {
			params.BatchID = arg.BatchID
			match, err := q.CreateMatch(ctx, params)
			if err != nil {
				return err
			}
			result.Matches = append(result.Matches, match)
		}
		return nil
	})

	return result, err
}
