package id

import (
	"errors"
	"fmt"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/errs"
	"go-hailstorm/internal/pkg/ginx"
	idsvc "go-hailstorm/internal/service/id"
	"strconv"
	"time"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc idsvc.Service
}

func NewHandler(svc idsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/ids")
	g.GET("/next", ginx.W(h.Next))
	g.POST("/batch", ginx.B[BatchGenerateReq](h.BatchGenerate))
	g.GET("/:id", ginx.W(h.Parse))

	server.GET("/node", ginx.W(h.Node))
}

// Next 生成一个 ID
func (h *Handler) Next(ctx *gin.Context) (ginx.Result, error) {
	id, err := h.svc.Generate(ctx.Request.Context())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: h.toIDVO(id)}, nil
}

// BatchGenerate 批量生成，只返回 ID 本身
func (h *Handler) BatchGenerate(ctx *gin.Context, req BatchGenerateReq) (ginx.Result, error) {
	ids, err := h.svc.BatchGenerate(ctx.Request.Context(), req.Count)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: BatchGenerateResp{
			IDs: slice.Map(ids, func(_ int, src domain.ID) string {
				return src.String()
			}),
		},
	}, nil
}

// Parse 拆解路径里面的 ID
func (h *Handler) Parse(ctx *gin.Context) (ginx.Result, error) {
	value, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return invalidParamResult, fmt.Errorf("%w: %w", ginx.ErrBadRequest, err)
	}
	id, err := h.svc.Parse(ctx.Request.Context(), value)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: h.toIDVO(id)}, nil
}

func (h *Handler) Node(ctx *gin.Context) (ginx.Result, error) {
	node := h.svc.Node(ctx.Request.Context())
	return ginx.Result{
		Data: Node{
			NodeID:    node.NodeID,
			Kind:      node.Kind.String(),
			Epoch:     node.Epoch.Format(time.RFC3339),
			BitsEpoch: node.BitsEpoch,
			BitsNode:  node.BitsNode,
			BitsSeq:   node.BitsSeq,
		},
	}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		return invalidParamResult, fmt.Errorf("%w: %w", ginx.ErrBadRequest, err)
	case errors.Is(err, errs.ErrClockRegression):
		return clockRegressionResult, fmt.Errorf("%w: %w", ginx.ErrServiceUnavailable, err)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toIDVO(id domain.ID) ID {
	return ID{
		ID:        id.String(),
		Timestamp: id.Timestamp,
		Time:      id.Time.Format(time.RFC3339Nano),
		NodeID:    id.NodeID,
		Sequence:  id.Sequence,
	}
}
