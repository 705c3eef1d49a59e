package api

import (
	"errors"
	"net/http"
	"time"

	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/token"
	"github.com/agrilink/farmwork/util"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Role     string `json:"role" binding:"required,oneof=farmer worker"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	Role                  string    `json:"role"`
	UserID                int64     `json:"user_id"`
	Name                  string    `json:"name"`
}

// loginUser 登录，按角色查找雇主或零工账号
// POST /v1/auth/login
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var userID int64
	var name, hashedPassword string
	var err error

	switch req.Role {
	case util.FarmerRole:
		var farmer db.Farmer
		farmer, err = server.store.GetFarmerByPhone(ctx, req.Phone)
		userID, name, hashedPassword = farmer.ID, farmer.Name, farmer.HashedPassword
	case util.WorkerRole:
		var worker db.Worker
		worker, err = server.store.GetWorkerByPhone(ctx, req.Phone)
		userID, name, hashedPassword = worker.ID, worker.Name, worker.HashedPassword
	}

	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("account not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err = util.CheckPassword(req.Password, hashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("incorrect password")))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		userID,
		req.Role,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
		userID,
		req.Role,
		server.config.RefreshTokenDuration,
		token.TokenTypeRefreshToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, loginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessPayload.ExpiredAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
		Role:                  req.Role,
		UserID:                userID,
		Name:                  name,
	})
}

type renewAccessTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type renewAccessTokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

// renewAccessToken 用刷新令牌换取新的访问令牌
// POST /v1/auth/refresh
func (server *Server) renewAccessToken(ctx *gin.Context) {
	var req renewAccessTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	refreshPayload, err := server.tokenMaker.VerifyToken(req.RefreshToken, token.TokenTypeRefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		refreshPayload.UserID,
		refreshPayload.Role,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, renewAccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiredAt,
	})
}
