package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Every category, ordered by name"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /api/v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns every category. Categories are shared by all users.",
		Tags:        []string{"Categories"},
		Security:    auth.Security(),
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	if auth.PrincipalFrom(ctx) == nil {
		return nil, huma.Error401Unauthorized(auth.ErrMissingToken.Error())
	}

	logData := logging.GetLogData(ctx)
	categories, err := logging.Timed(logData, "listCategoriesMs", func() ([]service.Category, error) {
		return h.CategoryService.ListCategories(ctx)
	})
	if err != nil {
		if logData != nil {
			logData.AddError(err)
		}
		return nil, huma.Error500InternalServerError("failed to list categories")
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(categories)),
	}
	for i, c := range categories {
		resp.Categories[i] = Category{ID: c.ID, Name: c.Name}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
