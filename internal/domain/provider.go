package domain

import (
	"github.com/google/wire"

	"newschat-server/internal/domain/chat"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	chat.NewService,
)
