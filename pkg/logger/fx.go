package logger

import (
	"github.com/fredd/aora/internal/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *Impl {
		return New(
			Opts{
				Env:       cfg.App.Env,
				SentryDSN: cfg.App.SentryDSN,
			},
		)
	},
	fx.As(new(Logger)),
)
