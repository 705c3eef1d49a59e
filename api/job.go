package api

import (
	"errors"
	"net/http"
	"time"

	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/token"
	"github.com/agrilink/farmwork/val"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
)

type jobResponse struct {
	ID            int64     `json:"id"`
	FarmerID      int64     `json:"farmer_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	SkillRequired string    `json:"skill_required"`
	Location      string    `json:"location"`
	Duration      *string   `json:"duration,omitempty"`
	PayRate       *string   `json:"pay_rate,omitempty"`
	Status        string    `json:"status"`
	PostedAt      time.Time `json:"posted_at"`
}

func newJobResponse(job db.Job) jobResponse {
	resp := jobResponse{
		ID:            job.ID,
		FarmerID:      job.FarmerID,
		Title:         job.Title,
		SkillRequired: job.SkillRequired,
		Location:      job.Location,
		Status:        job.Status,
		PostedAt:      job.PostedAt,
	}

	if job.Description.Valid {
		resp.Description = &job.Description.String
	}
	if job.Duration.Valid {
		resp.Duration = &job.Duration.String
	}
	if job.PayRate.Valid {
		resp.PayRate = &job.PayRate.String
	}

	return resp
}

type createJobRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=100"`
	Description   *string `json:"description" binding:"omitempty,max=2000"`
	SkillRequired string  `json:"skill_required" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Duration      *string `json:"duration" binding:"omitempty,max=100"`
	PayRate       *string `json:"pay_rate" binding:"omitempty,max=100"`
}

// createJob 雇主发布岗位
// POST /v1/jobs
func (server *Server) createJob(ctx *gin.Context) {
	var req createJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateLocation(req.Location); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := val.ValidateSkills(req.SkillRequired); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	arg := db.CreateJobParams{
		FarmerID:      authPayload.UserID,
		Title:         req.Title,
		SkillRequired: req.SkillRequired,
		Location:      req.Location,
	}
	if req.Description != nil {
		arg.Description = pgtype.Text{String: *req.Description, Valid: true}
	}
	if req.Duration != nil {
		arg.Duration = pgtype.Text{String: *req.Duration, Valid: true}
	}
	if req.PayRate != nil {
		arg.PayRate = pgtype.Text{String: *req.PayRate, Valid: true}
	}

	job, err := server.store.CreateJob(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("farmer not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newJobResponse(job))
}

type listJobsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listJobs 岗位列表（分页，最新优先）
// GET /v1/jobs
func (server *Server) listJobs(ctx *gin.Context) {
	var req listJobsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobs, err := server.store.ListJobs(ctx, db.ListJobsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]jobResponse, len(jobs))
	for i, job := range jobs {
		resp[i] = newJobResponse(job)
	}

	ctx.JSON(http.StatusOK, resp)
}

type jobIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getJob 岗位详情
// GET /v1/jobs/:id
func (server *Server) getJob(ctx *gin.Context) {
	var req jobIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	job, err := server.store.GetJob(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newJobResponse(job))
}

type updateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open filled closed"`
}

// updateJobStatus 更新岗位状态（仅岗位发布者）
// PATCH /v1/jobs/:id/status
func (server *Server) updateJobStatus(ctx *gin.Context) {
	var uri jobIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
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

	job, err = server.store.UpdateJobStatus(ctx, db.UpdateJobStatusParams{
		ID:     uri.ID,
		Status: req.Status,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newJobResponse(job))
}
