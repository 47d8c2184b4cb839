package middleware

import (
	"context"
	"strings"

	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/router"
	"github.com/missionforge/backend/pkg/xcontext"
)

// AuthVerifier resolves the requester identity from the bearer header or the
// access token cookie. By default a missing or broken token aborts the
// request; WithOptional lets anonymous requests pass through without an
// identity, for endpoints that serve both audiences.
type AuthVerifier struct {
	optional bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (v *AuthVerifier) WithOptional() *AuthVerifier {
	v.optional = true
	return v
}

func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := extractAccessToken(ctx)
		if token == "" {
			if v.optional {
				return nil, nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			if v.optional {
				xcontext.Logger(ctx).Debugf("Ignore an invalid access token: %v", err)
				return nil, nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func extractAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	if authorization != "" {
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found {
			return ""
		}

		return token
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
