// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wakeup_backend/internal/feature/auth/domain/entity"
	"wakeup_backend/internal/feature/auth/transport/http/dto"
	"wakeup_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたユーザー名とパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, userName, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, userName, password string) (*entity.User, string, error)
	// GetByName はユーザー名でユーザーを取得します。
	GetByName(ctx context.Context, userName string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - ユーザー名重複時は400を返却
// - 成功時は200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password are required"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("register rejected", "user_name", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"detail": "User already exists"})
			return
		}
		slog.Error("register failed", "error", err, "user_name", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	slog.Info("user registered", "user_id", user.ID, "user_name", user.UserName)
	c.JSON(http.StatusOK, dto.RegisterResp{
		UserName: user.UserName,
		Status:   "User registered successfully",
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - ユーザー未登録時は404、パスワード不一致時は400を返却
// - 認証成功時はユーザーIDとJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password are required"})
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login failed", "error", err, "user_name", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "error", err, "user_name", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Incorrect password"})
		default:
			slog.Error("login failed", "error", err, "user_name", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		}
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "user_name", user.UserName)
	c.JSON(http.StatusOK, dto.LoginResp{
		UserID:   user.ID,
		UserName: user.UserName,
		Token:    token,
	})
}

// GetUser はユーザー取得APIエンドポイントを処理します。
// パスパラメータのユーザー名でユーザーを検索し、IDとユーザー名を返します。
func (h *AuthHandler) GetUser(c *gin.Context) {
	userName := c.Param("user_name")
	user, err := h.auth.GetByName(c.Request.Context(), userName)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		slog.Error("get user failed", "error", err, "user_name", userName)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResp{UserID: user.ID, UserName: user.UserName})
}
