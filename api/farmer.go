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

type farmerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newFarmerResponse(farmer db.Farmer) farmerResponse {
	resp := farmerResponse{
		ID:        farmer.ID,
		Name:      farmer.Name,
		Phone:     farmer.Phone,
		Location:  farmer.Location,
		CreatedAt: farmer.CreatedAt,
	}

	if farmer.Email.Valid {
		resp.Email = &farmer.Email.String
	}

	return resp
}

type registerFarmerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Email    *string `json:"email"`
}

// registerFarmer 雇主注册
// POST /v1/farmers
func (server *Server) registerFarmer(ctx *gin.Context) {
	var req registerFarmerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validateRegisterFarmer(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	arg := db.CreateFarmerParams{
		Name:           req.Name,
		Phone:          req.Phone,
		HashedPassword: hashedPassword,
		Location:       req.Location,
	}
	if req.Email != nil {
		arg.Email = pgtype.Text{String: *req.Email, Valid: true}
	}

	farmer, err := server.store.CreateFarmer(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("phone already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newFarmerResponse(farmer))
}

func validateRegisterFarmer(req registerFarmerRequest) error {
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
	if req.Email != nil {
		if err := val.ValidateEmail(*req.Email); err != nil {
			return err
		}
	}
	return nil
}

// getCurrentFarmer 获取当前雇主信息
// GET /v1/farmers/me
func (server *Server) getCurrentFarmer(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != util.FarmerRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("permission denied")))
		return
	}

	farmer, err := server.store.GetFarmer(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newFarmerResponse(farmer))
}

type updateFarmerLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

// updateFarmerLocation 更新雇主所在地
// PATCH /v1/farmers/me/location
func (server *Server) updateFarmerLocation(ctx *gin.Context) {
	var req updateFarmerLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateLocation(req.Location); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != util.FarmerRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("permission denied")))
		return
	}

	farmer, err := server.store.UpdateFarmerLocation(ctx, db.UpdateFarmerLocationParams{
		ID:       authPayload.UserID,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newFarmerResponse(farmer))
}
