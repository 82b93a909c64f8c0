// Package server exposes the plan comparator as a small JSON-over-HTTP
// service. The request body is the same shape as the YAML configuration
// file; the response is the ranked comparison set.
package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rgehrsitz/planrank/internal/compare"
	"github.com/rgehrsitz/planrank/internal/config"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler routes comparison requests.
type Handler struct {
	engine *compare.Engine
	parser *config.InputParser
}

// NewHandler creates a handler with a fresh comparison engine.
func NewHandler() *Handler {
	return &Handler{
		engine: compare.NewEngine(),
		parser: config.NewInputParser(),
	}
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/compare":
		h.handleCompare(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// handleCompare runs a comparison for a JSON-encoded configuration.
func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var cfg config.Configuration
	if err := json.Unmarshal(ctx.PostBody(), &cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result := h.engine.Compare(cfg.Plans, cfg.CompareInput())

	body, err := json.Marshal(result)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("encoding response: %v", err))
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

// writeError writes a JSON error body with the given status.
func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(ErrorResponse{Status: status, Message: message})
	if err != nil {
		ctx.SetBodyString(`{"status":500,"message":"encoding error"}`)
		return
	}
	ctx.SetBody(body)
}
