//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"wellsync/internal"
	"wellsync/internal/api"
	"wellsync/internal/providers"
	"wellsync/internal/structures"
	"wellsync/internal/sync"
)

func InitApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		api.NewWithingsClient,
		api.NewIntervalsClient,
		sync.NewTokenStore,
		sync.NewAggregator,
		sync.NewSyncer,
		internal.NewApp,

		wire.Bind(new(sync.MeasurementSource), new(*api.WithingsClient)),
		wire.Bind(new(sync.WellnessSink), new(*api.IntervalsClient)),
		wire.Bind(new(sync.TokenStoreInterface), new(*sync.TokenStore)),
	)

	return nil, nil
}
