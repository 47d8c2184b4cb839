package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/missionforge/backend/config"
	"github.com/missionforge/backend/internal/model"
	"github.com/missionforge/backend/pkg/authenticator"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/logger"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc returns a replacement context, or nil to keep the current
// one. Returning an error aborts the request before the handler runs.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs after the response is decided, even on error.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db           *gorm.DB
	cfg          config.Configs
	logger       logger.Logger
	tokenEngine  authenticator.TokenEngine[model.AccessToken]
	sessionStore sessions.Store

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		db:     db,
		cfg:    cfg,
		logger: logger,
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](
			cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration),
		sessionStore: sessions.NewCookieStore([]byte(cfg.Session.Secret)),
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so groups of endpoints can add their own Before/After.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Static(pattern, root string) {
	r.mux.Handle(pattern, http.FileServer(http.Dir(root)))
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	// Capture the middleware chain at registration time. Branches created
	// afterwards do not affect already registered endpoints.
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, r.sessionStore)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithError(ctx)
		ctx = xcontext.WithResponse(ctx)

		func() {
			if req.Method != method {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Not supported method %s", req.Method))
				return
			}

			for _, m := range befores {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			var request Request
			if err := bindRequest(req, &request); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)

			for _, m := range afters {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}()

		handleResponse(ctx)

		for _, closer := range closers {
			closer(ctx)
		}
	}
}

func bindRequest(req *http.Request, obj any) error {
	if req.Method == http.MethodGet {
		values := map[string]any{}
		for key, value := range req.URL.Query() {
			if len(value) > 0 {
				values[key] = value[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           obj,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(values)
	}

	if req.Body == nil {
		return nil
	}

	if err := json.NewDecoder(req.Body).Decode(obj); err != nil && err.Error() != "EOF" {
		return err
	}

	return nil
}
