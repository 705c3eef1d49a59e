package api

import (
	"errors"
	"net/http"
	"time"

	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/token"
	"github.com/agrilink/farmwork/util"
	"github.com/agrilink/farmwork/val"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
)

type workerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Skills    string    `json:"skills"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func newWorkerResponse(worker db.Worker) workerResponse {
	return workerResponse{
		ID:        worker.ID,
		Name:      worker.Name,
		Phone:     worker.Phone,
		Location:  worker.Location,
		Skills:    worker.Skills,
		Available: worker.Available,
		CreatedAt: worker.CreatedAt,
	}
}

type registerWorkerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Skills    string `json:"skills" binding:"required"`
	Available *bool  `json:"available"`
}

// registerWorker 零工注册
// POST /v1/workers
func (server *Server) registerWorker(ctx *gin.Context) {
	var req registerWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validateRegisterWorker(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 未显式声明时默认可接单
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	worker, err := server.store.CreateWorker(ctx, db.CreateWorkerParams{
		Name:           req.Name,
		Phone:          req.Phone,
		HashedPassword: hashedPassword,
		Location:       req.Location,
		Skills:         req.Skills,
		Available:      available,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("phone already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newWorkerResponse(worker))
}

func validateRegisterWorker(req registerWorkerRequest) error {
	if err := val.ValidateFullName(req.Name); err != nil {
		return err
	}
	if err := val.ValidatePhone(req.Phone); err != nil {
		return err
	}
	if err := val.ValidatePassword(req.Password); err != nil {
		return err
	}
	if err := val.ValidateLocation(req.Location); err != nil {
		return err
	}
	return val.ValidateSkills(req.Skills)
}

// getCurrentWorker 获取当前零工信息
// GET /v1/workers/me
func (server *Server) getCurrentWorker(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != util.WorkerRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("permission denied")))
		return
	}

	worker, err := server.store.GetWorker(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newWorkerResponse(worker))
}

type updateWorkerProfileRequest struct {
	Location *string `json:"location"`
	Skills   *string `json:"skills"`
}

// updateWorkerProfile 更新零工资料（位置、技能）
// PATCH /v1/workers/me
func (server *Server) updateWorkerProfile(ctx *gin.Context) {
	var req updateWorkerProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != util.WorkerRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("permission denied")))
		return
	}

	arg := db.UpdateWorkerProfileParams{
		ID: authPayload.UserID,
	}

	if req.Location != nil {
		if err := val.ValidateLocation(*req.Location); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		arg.Location = pgtype.Text{String: *req.Location, Valid: true}
	}

	if req.Skills != nil {
		if err := val.ValidateSkills(*req.Skills); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		arg.Skills = pgtype.Text{String: *req.Skills, Valid: true}
	}

	worker, err := server.store.UpdateWorkerProfile(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newWorkerResponse(worker))
}

type updateWorkerAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// updateWorkerAvailability 更新零工接单状态
// PATCH /v1/workers/me/availability
func (server *Server) updateWorkerAvailability(ctx *gin.Context) {
	var req updateWorkerAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != util.WorkerRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("permission denied")))
		return
	}

	worker, err := server.store.UpdateWorkerAvailability(ctx, db.UpdateWorkerAvailabilityParams{
		ID:        authPayload.UserID,
		Available: *req.Available,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newWorkerResponse(worker))
}
