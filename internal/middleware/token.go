package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/pkg/router"
	"github.com/missionforge/backend/pkg/xcontext"
)

// HandleSetAccessToken drops the freshly issued access token into a cookie so
// browser clients are logged in without touching the response body.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		resp, ok := xcontext.Response(ctx).(*model.WalletVerifyResponse)
		if ok && resp.AccessToken != "" {
			cfg := xcontext.Configs(ctx).Auth
			http.SetCookie(xcontext.HTTPWriter(ctx), &http.Cookie{
				Name:     cfg.AccessToken.Name,
				Value:    resp.AccessToken,
				Path:     "/",
				Expires:  time.Now().Add(cfg.AccessToken.Expiration),
				Secure:   true,
				HttpOnly: false,
			})
		}

		return nil, nil
	}
}
