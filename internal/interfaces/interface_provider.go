package interfaces

import (
	"github.com/google/wire"

	"newschat-server/internal/interfaces/httpserver"
	"newschat-server/internal/interfaces/httpserver/handlers"
)

// InterfacesProvider provides all interface layer dependencies
var InterfacesProvider = wire.NewSet(
	handlers.NewChatHandler,
	httpserver.NewHTTPServer,
)
