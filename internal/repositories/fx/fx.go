package fx

import (
	"github.com/fredd/aora/internal/repositories/orphan"
	"go.uber.org/fx"
)

var Module = fx.Options(
	orphan.Module,
)
