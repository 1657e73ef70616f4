package app

import (
	"github.com/rs/zerolog"

	"speedread/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config  // loaded file + env settings with flags applied
	Log      zerolog.Logger // root logger
}
