package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"solottery/internal/core"
	"solottery/internal/http/middleware"
	"solottery/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Root        = "GET /{$}"
	Health      = "GET /api/health"
	Login       = "POST /api/auth/login"
	CreateRound = "POST /api/rounds"
	ListRounds  = "GET /api/rounds"
	GetRound    = "GET /api/rounds/{roundID}"
	ListEntries = "GET /api/rounds/{roundID}/entries"
	EnterRound  = "POST /api/rounds/{roundID}/enter"
	VerifyEntry = "POST /api/rounds/{roundID}/verify/{signature}"
	DrawRound   = "POST /api/rounds/{roundID}/draw"
)

type LotteryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	lottery          LotteryService
	health           HealthChecker
	adminGated       bool
}

func NewLotteryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, lotteryService LotteryService, health HealthChecker, adminGated bool) *LotteryHandler {
	return &LotteryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		lottery:          lotteryService,
		health:           health,
		adminGated:       adminGated,
	}
}

func (h *LotteryHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"message": "Solana Lottery Backend Running"}, http.StatusOK, requestID(r))
}

func (h *LotteryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"backend":  "running",
		"database": "connected",
	}
	code := http.StatusOK
	if err := h.health.Ping(r.Context()); err != nil {
		status["database"] = "unavailable"
		code = http.StatusServiceUnavailable
		h.logs.Errorw("database ping failed", "error", err, "handler", Health, "request_id", requestID(r))
	}
	h.respond(w, status, code, requestID(r))
}

func (h *LotteryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var loginReq payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &loginReq)
	if err != nil || loginReq.Validate() != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", reqID)
		return
	}

	token, err := h.lottery.Authenticate(r.Context(), loginReq.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAdminNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", reqID)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorize(w, r, CreateRound, reqID) {
		return
	}

	var roundReq payload.CreateRoundRequest
	err := h.requestValidator.DecodeJSONPayload(r, &roundReq)
	if err == nil {
		err = roundReq.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create round",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateRound,
			"request_id", reqID)
		return
	}

	round, err := h.lottery.CreateRound(r.Context(), roundReq.ToMessage())
	if err != nil {
		h.respondDomainError(w, err, "Could not create round", CreateRound, reqID)
		return
	}

	h.respond(w, round, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	rounds, err := h.lottery.ListRounds(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "Could not list rounds", ListRounds, reqID)
		return
	}

	h.respond(w, rounds, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	round, err := h.lottery.GetRound(r.Context(), r.PathValue("roundID"))
	if err != nil {
		h.respondDomainError(w, err, "Could not get round", GetRound, reqID)
		return
	}

	h.respond(w, round, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	entries, err := h.lottery.ListEntries(r.Context(), r.PathValue("roundID"))
	if err != nil {
		h.respondDomainError(w, err, "Could not list entries", ListEntries, reqID)
		return
	}

	h.respond(w, entries, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleEnterRound(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	roundID := r.PathValue("roundID")

	var enterReq payload.EnterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &enterReq)
	if err == nil {
		err = enterReq.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not enter round",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EnterRound,
			"request_id", reqID)
		return
	}

	entry, err := h.lottery.SubmitEntry(r.Context(), roundID, enterReq.ToMessage())
	if err != nil {
		h.respondDomainError(w, err, "Could not enter round", EnterRound, reqID)
		return
	}

	h.respond(w, entry, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleVerifyEntry(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	entry, err := h.lottery.ReverifyEntry(r.Context(), r.PathValue("roundID"), r.PathValue("signature"))
	if err != nil {
		h.respondDomainError(w, err, "Could not verify entry", VerifyEntry, reqID)
		return
	}

	h.respond(w, entry, http.StatusOK, reqID)
}

func (h *LotteryHandler) HandleDrawRound(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorize(w, r, DrawRound, reqID) {
		return
	}

	result, err := h.lottery.Draw(r.Context(), r.PathValue("roundID"))
	if err != nil {
		h.respondDomainError(w, err, "Could not draw winner", DrawRound, reqID)
		return
	}

	h.respond(w, result, http.StatusOK, reqID)
}

// authorize enforces the admin bearer token on gated routes. When gating is
// disabled it always passes.
func (h *LotteryHandler) authorize(w http.ResponseWriter, r *http.Request, handlerName, reqID string) bool {
	if !h.adminGated {
		return true
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   "Authorization header is required",
		}, http.StatusUnauthorized, reqID)
		h.logs.Errorw("missing authorization header", "handler", handlerName, "request_id", reqID)
		return false
	}

	if err := h.lottery.AuthorizeAdmin(token); err != nil {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   err.Error(),
		}, http.StatusUnauthorized, reqID)
		h.logs.Errorw("invalid admin token", "error", err, "handler", handlerName, "request_id", reqID)
		return false
	}

	return true
}

func (h *LotteryHandler) respondDomainError(w http.ResponseWriter, err error, message, handlerName, reqID string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrRoundNotFound), errors.Is(err, core.ErrEntryNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrRoundExists),
		errors.Is(err, core.ErrRoundClosed),
		errors.Is(err, core.ErrDuplicateEntry),
		errors.Is(err, core.ErrNoEligibleEntries):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, reqID)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", reqID)
}

func (h *LotteryHandler) respond(w http.ResponseWriter, resp any, code int, reqID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", reqID)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}
