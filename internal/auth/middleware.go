package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
)

// SecurityScheme is registered under SchemeName in the OpenAPI components.
func SecurityScheme() *huma.SecurityScheme {
	return &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

// Security is the requirement protected operations declare.
func Security() []map[string][]string {
	return []map[string][]string{{SchemeName: {}}}
}

// Middleware authenticates operations that declare the bearer scheme. The
// token is read from the Authorization header and falls back to cookieName.
func Middleware(api huma.API, verifier *Verifier, cookieName string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresAuth(ctx.Operation()) {
			next(ctx)
			return
		}

		principal, err := verifier.Verify(tokenFrom(ctx, cookieName))
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authFailure", err.Error())
			}
			message := ErrInvalidToken.Error()
			if errors.Is(err, ErrMissingToken) {
				message = ErrMissingToken.Error()
			}
			ctx.SetHeader("WWW-Authenticate", `Bearer realm="api"`)
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, message)
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", principal.UserID)
		}
		next(huma.WithContext(ctx, WithPrincipal(ctx.Context(), principal)))
	}
}

func requiresAuth(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SchemeName]; ok {
			return true
		}
	}
	return false
}

func tokenFrom(ctx huma.Context, cookieName string) string {
	if header := ctx.Header("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	cookie, err := huma.ReadCookie(ctx, cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
