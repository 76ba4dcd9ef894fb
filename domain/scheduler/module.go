package scheduler

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the shared Scheduler; domains register their tasks with fx.Invoke.
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle starts the scheduler after all tasks are registered
func RegisterLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
