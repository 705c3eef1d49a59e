package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/agrilink/farmwork/algorithm"
	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/token"
	"github.com/agrilink/farmwork/worker"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// toMatchJob 把岗位记录转换为算法输入
func toMatchJob(job db.Job) algorithm.MatchJob {
	return algorithm.MatchJob{
		JobID:         job.ID,
		Title:         job.Title,
		SkillRequired: job.SkillRequired,
		Location:      job.Location,
	}
}

// toMatchWorker 把零工记录转换为算法输入
func toMatchWorker(w db.Worker) algorithm.MatchWorker {
	return algorithm.MatchWorker{
		WorkerID:  w.ID,
		Name:      w.Name,
		Skills:    w.Skills,
		Location:  w.Location,
		Available: w.Available,
	}
}

type matchedWorkerResponse struct {
	WorkerID    int64  `json:"worker_id"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

type matchWorkersResponse struct {
	JobID   int64                   `json:"job_id"`
	BatchID uuid.UUID               `json:"batch_id"`
	Matches []matchedWorkerResponse `json:"matches"`
}

type matchLimitRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// matchWorkersForJob 为岗位排序推荐零工（仅岗位发布者）
// GET /v1/jobs/:id/matches?limit=N
func (server *Server) matchWorkersForJob(ctx *gin.Context) {
	var uri jobIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req matchLimitRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = server.config.MatchDefaultLimit
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	job, err := server.store.GetJob(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if job.FarmerID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("job belongs to another farmer")))
		return
	}

	// 只对可接单的零工打分
	workers, err := server.store.ListAvailableWorkers(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	candidates := make([]algorithm.MatchWorker, len(workers))
	workerNames := make(map[int64]string, len(workers))
	for i, w := range workers {
		candidates[i] = toMatchWorker(w)
		workerNames[w.ID] = w.Name
	}

	results, err := server.matcher.MatchWorkers(ctx, toMatchJob(job), candidates, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	batchID := uuid.New()
	server.recordMatches(ctx, batchID, job.ID, results)

	resp := matchWorkersResponse{
		JobID:   job.ID,
		BatchID: batchID,
		Matches: make([]matchedWorkerResponse, len(results)),
	}
	for i, r := range results {
		resp.Matches[i] = matchedWorkerResponse{
			WorkerID:    r.SubjectID,
			Name:        workerNames[r.SubjectID],
			Score:       r.Score,
			Explanation: r.Explanation,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

// recordMatches 异步落库匹配结果，失败只记日志不影响响应
func (server *Server) recordMatches(ctx *gin.Context, batchID uuid.UUID, jobID int64, results []algorithm.MatchResult) {
	if len(results) == 0 {
		return
	}

	payload := &worker.PayloadRecordMatches{
		BatchID: batchID,
		Matches: make([]worker.MatchRecord, len(results)),
	}
	for i, r := range results {
		payload.Matches[i] = worker.MatchRecord{
			JobID:       jobID,
			WorkerID:    r.SubjectID,
			Score:       int32(r.Score),
			Explanation: r.Explanation,
		}
	}

	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.Queue(worker.QueueDefault),
	}
	if err := server.taskDistributor.DistributeTaskRecordMatches(ctx, payload, opts...); err != nil {
		log.Error().Err(err).
			Str("batch_id", batchID.String()).
			Int64("job_id", jobID).
			Msg("failed to enqueue record matches task")
	}
}

type matchedJobResponse struct {
	JobID       int64  `json:"job_id"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// matchJobsForWorker 为当前零工排序推荐在招岗位
// GET /v1/workers/me/matches?limit=N
func (server *Server) matchJobsForWorker(ctx *gin.Context) {
	var req matchLimitRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = server.config.MatchDefaultLimit
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	w, err := server.store.GetWorker(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	jobs, err := server.store.ListOpenJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	candidates := make([]algorithm.MatchJob, len(jobs))
	jobTitles := make(map[int64]string, len(jobs))
	for i, job := range jobs {
		candidates[i] = toMatchJob(job)
		jobTitles[job.ID] = job.Title
	}

	results, err := server.matcher.MatchJobs(ctx, toMatchWorker(w), candidates, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]matchedJobResponse, len(results))
	for i, r := range results {
		resp[i] = matchedJobResponse{
			JobID:       r.SubjectID,
			Title:       jobTitles[r.SubjectID],
			Score:       r.Score,
			Explanation: r.Explanation,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

type matchHistoryEntry struct {
	ID          int64     `json:"id"`
	BatchID     uuid.UUID `json:"batch_id"`
	JobID       int64     `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	WorkerID    int64     `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	Score       int32     `json:"score"`
	Explanation string    `json:"explanation"`
	MatchedAt   time.Time `json:"matched_at"`
}

// listMatchHistory 最近的匹配记录
// GET /v1/matches/history?limit=N
func (server *Server) listMatchHistory(ctx *gin.Context) {
	var req matchLimitRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = server.config.MatchDefaultLimit
	}

	rows, err := server.store.ListRecentMatches(ctx, int32(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]matchHistoryEntry, len(rows))
	for i, row := range rows {
		resp[i] = matchHistoryEntry{
			ID:          row.ID,
			BatchID:     row.BatchID,
			JobID:       row.JobID,
			JobTitle:    row.JobTitle,
			WorkerID:    row.WorkerID,
			WorkerName:  row.WorkerName,
			Score:       row.Score,
			Explanation: row.Explanation,
			MatchedAt:   row.MatchedAt,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
