package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const testSigningKey = "test-signing-key"

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRest(t *testing.T) (*Rest, *sqlconfig.MockICategoryTable) {
	t.Helper()
	logger := logging.SetupLogging()
	logger.Out = io.Discard

	categories := sqlconfig.NewMockICategoryTable(t)
	store := &storage.Storage{
		Expenses:   sqlconfig.NewMockIExpenseTable(t),
		Categories: categories,
		Users:      sqlconfig.NewMockIUserTable(t),
	}

	return &Rest{
		Logger:     logger,
		Port:       "0",
		Service:    service.NewService(store, operator.NewMockProcessor(t)),
		Storage:    okPinger{},
		Verifier:   auth.NewVerifier(testSigningKey),
		CookieName: "budget-auth",
	}, categories
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Routes(t *testing.T) {
	rest, categories := newTestRest(t)
	categories.EXPECT().List(mock.Anything).Return([]*sqlconfig.Category{{ID: 1, Name: "Food"}}, nil)
	h := rest.Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.IssueToken(testSigningKey, 3, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.AddCookie(&http.Cookie{Name: "budget-auth", Value: token})
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Food"`)
}

func TestHandler_OpenAPIDocumentsBearerScheme(t *testing.T) {
	rest, _ := newTestRest(t)

	rec := serve(rest.Handler(), httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"bearer"`)
	assert.Contains(t, body, "/api/v1/expenses/{id}")
	assert.Contains(t, body, "list-categories")
}

func TestServe_StopsOnCancel(t *testing.T) {
	rest, _ := newTestRest(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- rest.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
