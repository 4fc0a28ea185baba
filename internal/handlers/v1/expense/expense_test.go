package expense

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/filter"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/validation"
)

const testSigningKey = "test-signing-key"

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, ownerID int64, criteria filter.ExpenseCriteria, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error) {
	args := m.Called(ctx, ownerID, criteria, cursor)
	expenses, _ := args.Get(0).([]service.Expense)
	next, _ := args.Get(1).(*service.ExpenseCursor)
	return expenses, next, args.Error(2)
}

func (m *mockExpenseService) GetExpense(ctx context.Context, ownerID, id int64) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, id)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, ownerID int64, input service.ExpenseInput) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, input)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) ReplaceExpense(ctx context.Context, ownerID, id int64, input service.ExpenseInput) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, id, input)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, ownerID, id int64, patch service.ExpensePatch) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, id, patch)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, ownerID, id int64) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

// newTestAPI registers every expense handler behind the logging and auth
// middleware.
func newTestAPI(t *testing.T, svc *mockExpenseService) humatest.TestAPI {
	t.Helper()
	logger := logging.SetupLogging()
	logger.Out = io.Discard

	_, api := humatest.New(t)
	api.UseMiddleware(logging.Middleware(logger))
	api.UseMiddleware(auth.Middleware(api, auth.NewVerifier(testSigningKey), "budget-auth"))

	NewListExpensesHandler(svc).Register(api)
	NewCreateExpenseHandler(svc).Register(api)
	NewGetExpenseHandler(svc).Register(api)
	NewUpdateExpenseHandler(svc).Register(api)
	NewDeleteExpenseHandler(svc).Register(api)
	return api
}

func authHeader(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.IssueToken(testSigningKey, userID, time.Hour)
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

func sampleExpense(id, ownerID int64) *service.Expense {
	stamp := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	return &service.Expense{
		ID:           id,
		OwnerID:      ownerID,
		CategoryID:   2,
		CategoryName: "Food",
		Description:  "Lunch",
		Amount:       decimal.RequireFromString("12.5"),
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

type problemBody struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func decodeProblem(t *testing.T, body io.Reader) problemBody {
	t.Helper()
	var p problemBody
	require.NoError(t, json.NewDecoder(body).Decode(&p))
	return p
}

func locations(p problemBody) []string {
	out := make([]string, len(p.Errors))
	for i, e := range p.Errors {
		out[i] = e.Location
	}
	return out
}

// -- parse unit tests --

func TestParseExpenseBody_CollectsEveryFailure(t *testing.T) {
	_, err := parseExpenseBody(&ExpenseBody{Category: 1, Description: "  ", Amount: "1.234", Date: "2024/01/10"})

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, validation.LocationBody, vErr.Location)
	require.Len(t, vErr.Fields, 3)
	assert.Equal(t, "description", vErr.Fields[0].Field)
	assert.Equal(t, "amount", vErr.Fields[1].Field)
	assert.Equal(t, "date", vErr.Fields[2].Field)
}

func TestParseExpensePatchBody_OnlySuppliedFields(t *testing.T) {
	amount := Amount("7")
	patch, err := parseExpensePatchBody(&ExpensePatchBody{Amount: &amount})

	require.NoError(t, err)
	assert.Nil(t, patch.CategoryID)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Date)
	require.NotNil(t, patch.Amount)
	assert.True(t, patch.Amount.Equal(decimal.NewFromInt(7)))
}

func TestAmount_UnmarshalStringOrNumber(t *testing.T) {
	var body struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"12.50","b":12.5}`), &body))
	assert.Equal(t, Amount("12.50"), body.A)
	assert.Equal(t, Amount("12.5"), body.B)
}

// -- create --

func TestFromService_KeepsSubSecondTimestamps(t *testing.T) {
	e := sampleExpense(3, 7)
	e.CreatedAt = time.Date(2024, 1, 10, 9, 30, 0, 123456000, time.UTC)
	e.UpdatedAt = e.CreatedAt.Add(250 * time.Microsecond)

	out := fromService(e)
	assert.Equal(t, "2024-01-10T09:30:00.123456Z", out.CreatedAt)
	assert.Equal(t, "2024-01-10T09:30:00.123706Z", out.UpdatedAt)
	assert.Less(t, out.CreatedAt, out.UpdatedAt)

	parsed, err := time.Parse(time.RFC3339Nano, out.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(e.UpdatedAt))
}

func TestHTTP_CreateExpense_OwnerForcedToCaller(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("CreateExpense", mock.Anything, int64(7), mock.MatchedBy(func(in service.ExpenseInput) bool {
		return in.CategoryID == 2 &&
			in.Description == "Lunch" &&
			in.Amount.Equal(decimal.RequireFromString("12.50")) &&
			in.Date.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	})).Return(sampleExpense(11, 7), nil)

	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"owner":       999,
		"id":          5,
		"created_at":  "1999-01-01T00:00:00Z",
		"category":    2,
		"description": "Lunch",
		"amount":      "12.50",
		"date":        "2024-01-10",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Expense
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(11), body.ID)
	assert.Equal(t, "Food", body.CategoryName)
	assert.Equal(t, "12.50", body.Amount)
	assert.Equal(t, "2024-01-10", body.Date)
	assert.Equal(t, "2024-01-10T09:30:00.000000Z", body.CreatedAt)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_NumericAmountAndDayFirstDate(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("CreateExpense", mock.Anything, int64(7), mock.MatchedBy(func(in service.ExpenseInput) bool {
		return in.Amount.Equal(decimal.RequireFromString("12.5")) &&
			in.Date.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	})).Return(sampleExpense(11, 7), nil)

	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"category":    2,
		"description": "Lunch",
		"amount":      12.5,
		"date":        "10-01-2024",
	})

	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_InvalidAmounts(t *testing.T) {
	for _, amount := range []any{"1.234", "abc", 1.234, "123456789", "1e999999999"} {
		svc := new(mockExpenseService)

		resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
			"category":    2,
			"description": "Lunch",
			"amount":      amount,
			"date":        "2024-01-10",
		})

		require.Equal(t, http.StatusUnprocessableEntity, resp.Code, "%v", amount)
		assert.Equal(t, []string{"body.amount"}, locations(decodeProblem(t, resp.Body)), "%v", amount)
		svc.AssertNotCalled(t, "CreateExpense")
	}
}

func TestHTTP_CreateExpense_InvalidDate(t *testing.T) {
	svc := new(mockExpenseService)

	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"category":    2,
		"description": "Lunch",
		"amount":      "1.00",
		"date":        "2024/01/10",
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, []string{"body.date"}, locations(decodeProblem(t, resp.Body)))
	svc.AssertNotCalled(t, "CreateExpense")
}

func TestHTTP_CreateExpense_MissingRequiredFields(t *testing.T) {
	svc := new(mockExpenseService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"description": "Lunch",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateExpense")
}

func TestHTTP_CreateExpense_UnknownCategory(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("CreateExpense", mock.Anything, int64(7), mock.Anything).
		Return(nil, validation.FieldFailure(validation.LocationBody, "category", `Invalid pk "99" - object does not exist.`, int64(99)))

	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"category":    99,
		"description": "Lunch",
		"amount":      "1.00",
		"date":        "2024-01-10",
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, []string{"body.category"}, locations(decodeProblem(t, resp.Body)))
}

func TestHTTP_CreateExpense_ServiceErrorIsHidden(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("CreateExpense", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	resp := newTestAPI(t, svc).Post("/api/v1/expenses", authHeader(t, 7), map[string]any{
		"category":    2,
		"description": "Lunch",
		"amount":      "1.00",
		"date":        "2024-01-10",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection refused")
}

func TestHTTP_Unauthenticated(t *testing.T) {
	svc := new(mockExpenseService)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusUnauthorized, api.Get("/api/v1/expenses").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/api/v1/expenses/1").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Delete("/api/v1/expenses/1").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Post("/api/v1/expenses", map[string]any{
		"category": 2, "description": "Lunch", "amount": "1.00", "date": "2024-01-10",
	}).Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/api/v1/expenses", "Authorization: Bearer forged").Code)
	svc.AssertExpectations(t)
}

// -- list --

func TestHTTP_ListExpenses_FiltersAndPaging(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("ListExpenses", mock.Anything, int64(7), mock.MatchedBy(func(c filter.ExpenseCriteria) bool {
		return c.Date != nil && c.Date.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) &&
			c.CategoryName != nil && *c.CategoryName == "food" &&
			c.DateFrom == nil && c.DateTo == nil
	}), &service.ExpenseCursor{Position: 10, Limit: 5}).
		Return([]service.Expense{*sampleExpense(3, 7)}, &service.ExpenseCursor{Position: 15, Limit: 5}, nil)

	resp := newTestAPI(t, svc).Get("/api/v1/expenses?date=10-01-2024&category=food&position=10&limit=5&unknown=1", authHeader(t, 7))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body ListExpensesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Expenses, 1)
	assert.Equal(t, int64(3), body.Expenses[0].ID)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 15, body.NextCursor.Position)
	svc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_EmptyUsesDefaults(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("ListExpenses", mock.Anything, int64(7), filter.ExpenseCriteria{}, &service.ExpenseCursor{Position: 0, Limit: service.DefaultExpenseLimit}).
		Return(nil, nil, nil)

	resp := newTestAPI(t, svc).Get("/api/v1/expenses?category=", authHeader(t, 7))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"expenses":[]`)
	assert.NotContains(t, resp.Body.String(), "nextCursor")
}

func TestHTTP_ListExpenses_MalformedDates(t *testing.T) {
	svc := new(mockExpenseService)

	resp := newTestAPI(t, svc).Get("/api/v1/expenses?date_from=yesterday&date_to=2024-13-40", authHeader(t, 7))

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, []string{"query.date_from", "query.date_to"}, locations(decodeProblem(t, resp.Body)))
	svc.AssertNotCalled(t, "ListExpenses")
}

func TestHTTP_ListExpenses_LimitOutOfRange(t *testing.T) {
	svc := new(mockExpenseService)

	resp := newTestAPI(t, svc).Get("/api/v1/expenses?limit=500", authHeader(t, 7))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "ListExpenses")
}

// -- single expense --

func TestHTTP_GetExpense(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("GetExpense", mock.Anything, int64(7), int64(3)).Return(sampleExpense(3, 7), nil)
	svc.On("GetExpense", mock.Anything, int64(8), int64(3)).Return(nil, service.ErrNotFound)
	api := newTestAPI(t, svc)

	resp := api.Get("/api/v1/expenses/3", authHeader(t, 7))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"category_name":"Food"`)

	resp = api.Get("/api/v1/expenses/3", authHeader(t, 8))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ReplaceExpense(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("ReplaceExpense", mock.Anything, int64(7), int64(3), mock.MatchedBy(func(in service.ExpenseInput) bool {
		return in.Description == "Dinner" && in.CategoryID == 2
	})).Return(sampleExpense(3, 7), nil)

	resp := newTestAPI(t, svc).Put("/api/v1/expenses/3", authHeader(t, 7), map[string]any{
		"owner":       8,
		"category":    2,
		"description": "Dinner",
		"amount":      "20.00",
		"date":        "2024-01-11",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_ReplaceExpense_RequiresFullBody(t *testing.T) {
	svc := new(mockExpenseService)

	resp := newTestAPI(t, svc).Put("/api/v1/expenses/3", authHeader(t, 7), map[string]any{
		"description": "Dinner",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "ReplaceExpense")
}

func TestHTTP_PatchExpense(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("UpdateExpense", mock.Anything, int64(7), int64(3), mock.MatchedBy(func(p service.ExpensePatch) bool {
		return p.Description != nil && *p.Description == "Dinner" &&
			p.Amount == nil && p.Date == nil && p.CategoryID == nil
	})).Return(sampleExpense(3, 7), nil)

	resp := newTestAPI(t, svc).Patch("/api/v1/expenses/3", authHeader(t, 7), map[string]any{
		"description": "Dinner",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_PatchExpense_Invalid(t *testing.T) {
	svc := new(mockExpenseService)

	resp := newTestAPI(t, svc).Patch("/api/v1/expenses/3", authHeader(t, 7), map[string]any{
		"amount": "9.999",
		"date":   "31-02-2024",
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.ElementsMatch(t, []string{"body.amount", "body.date"}, locations(decodeProblem(t, resp.Body)))
	svc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_PatchExpense_NotFound(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("UpdateExpense", mock.Anything, int64(8), int64(3), mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Patch("/api/v1/expenses/3", authHeader(t, 8), map[string]any{
		"description": "Mine now",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteExpense(t *testing.T) {
	svc := new(mockExpenseService)
	svc.On("DeleteExpense", mock.Anything, int64(7), int64(3)).Return(nil)
	svc.On("DeleteExpense", mock.Anything, int64(8), int64(3)).Return(service.ErrNotFound)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent, api.Delete("/api/v1/expenses/3", authHeader(t, 7)).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/api/v1/expenses/3", authHeader(t, 8)).Code)
	svc.AssertExpectations(t)
}
