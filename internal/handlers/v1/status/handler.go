package status

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type StatusOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

type Handler struct {
	Storage pinger
}

func NewHandler(store pinger) *Handler {
	return &Handler{Storage: store}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Reports whether the service can reach its database.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.Storage.Ping(pingCtx); err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddError(err)
		}
		return nil, huma.Error503ServiceUnavailable("database unavailable")
	}

	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
