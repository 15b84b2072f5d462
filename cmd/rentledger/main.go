package main

import (
	"context"
	"log/slog"

	"rentledger/config"
	"rentledger/internal/delivery"
	"rentledger/internal/delivery/monitor"
	"rentledger/internal/infra/changefeed"
	"rentledger/internal/infra/logs"
	"rentledger/internal/infra/persistence/aggregate"
	"rentledger/internal/infra/persistence/gormstore"
	"rentledger/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		changefeed.New,
		gormstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			aggregate.NewPropertyRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPropertyService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				monitor.NewLedgerMonitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer starts every delivery once the store has been opened and migrated.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Delivery stopped", slog.Any("error", err))
					}
				}()
			}

			return nil
		},
	})
}
