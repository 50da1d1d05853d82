package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskforge/backend/api/transport"
	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/pkg/httpcontext"
	authUC "github.com/taskforge/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register a new user
// @Tags auth
// @Router /api/v1/users [post]
func (h *AuthHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.RegisterRequest
	if err := transport.DecodeStrict(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, domain.ErrInvalidPayload.Message)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.Register(stdCtx, domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondMessage(ctx, http.StatusCreated, "user registered successfully")
}

// @Summary Log in and receive a session token
// @Tags auth
// @Router /api/v1/auth [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := transport.DecodeStrict(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, domain.ErrInvalidPayload.Message)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	signed, err := h.uc.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondJSON(ctx, http.StatusOK, transport.TokenResponse{
		Token:   signed,
		Message: "login successful",
	})
}
