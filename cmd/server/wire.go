//go:build wireinject

package main

import (
	"github.com/google/wire"

	"newschat-server/internal/domain"
	"newschat-server/internal/infrastructure"
	"newschat-server/internal/interfaces"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
