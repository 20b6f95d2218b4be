// Package guard adapts route guard decisions to HTTP middleware for
// server-rendered shells.
package guard

import (
	"time"

	"github.com/goliatone/go-router"
	"github.com/rapidphotoflow/go-auth"
)

// StateSource exposes the current auth state snapshot. *auth.Authflow
// satisfies it.
type StateSource interface {
	State() auth.AuthState
}

type Config struct {
	// LoginRoute is where unauthenticated visitors are sent.
	LoginRoute string

	// RejectedRouteKey names the cookie carrying the originally requested
	// path so the login flow can return the visitor.
	RejectedRouteKey string

	Logger auth.Logger

	// LoadingHandler runs while the auth state is unsettled.
	LoadingHandler router.HandlerFunc

	// DeniedHandler runs for authenticated visitors lacking the role.
	DeniedHandler router.HandlerFunc
}

// Protected guards routes that need a signed-in user.
func Protected(source StateSource, config ...Config) router.MiddlewareFunc {
	cfg := getDefaultConfig(config...)
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			decision := auth.RequireAuthenticated(source.State(), ctx.OriginalURL())
			return cfg.apply(ctx, decision, hf)
		}
	}
}

// AdminOnly guards routes that need an administrator.
func AdminOnly(source StateSource, config ...Config) router.MiddlewareFunc {
	cfg := getDefaultConfig(config...)
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			decision := auth.RequireAdmin(source.State(), ctx.OriginalURL())
			return cfg.apply(ctx, decision, hf)
		}
	}
}

func (cfg Config) apply(ctx router.Context, decision auth.GuardDecision, next router.HandlerFunc) error {
	switch decision.Verdict {
	case auth.VerdictLoading:
		return cfg.LoadingHandler(ctx)
	case auth.VerdictRedirect:
		cfg.setRejectedRoute(ctx, decision.From)
		return ctx.Redirect(cfg.LoginRoute, router.StatusSeeOther)
	case auth.VerdictDenied:
		cfg.Logger.Warn("access denied for %s", ctx.OriginalURL())
		return cfg.DeniedHandler(ctx)
	default:
		return next(ctx)
	}
}

func (cfg Config) setRejectedRoute(ctx router.Context, from string) {
	if from == "" {
		from = ctx.OriginalURL()
	}
	ctx.Cookie(&router.Cookie{
		Name:     cfg.RejectedRouteKey,
		Value:    from,
		Expires:  time.Now().Add(time.Minute * 5),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func getDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.LoginRoute == "" {
		cfg.LoginRoute = auth.DefaultLoginRoute
	}

	if cfg.RejectedRouteKey == "" {
		cfg.RejectedRouteKey = "rejected_route"
	}

	if cfg.Logger == nil {
		cfg.Logger = auth.DefaultLogger()
	}

	if cfg.LoadingHandler == nil {
		cfg.LoadingHandler = func(ctx router.Context) error {
			return ctx.Status(503).SendString("Authenticating, try again shortly")
		}
	}

	if cfg.DeniedHandler == nil {
		cfg.DeniedHandler = func(ctx router.Context) error {
			return ctx.Status(403).SendString("Forbidden")
		}
	}

	return cfg
}
