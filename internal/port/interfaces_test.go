package port_test

import (
	"github.com/krishn404/RepOSS/internal/adapter/cache"
	"github.com/krishn404/RepOSS/internal/adapter/github"
	"github.com/krishn404/RepOSS/internal/adapter/repository"
	"github.com/krishn404/RepOSS/internal/port"
	"github.com/krishn404/RepOSS/internal/service"
)

// Compile-time checks that the adapters satisfy their ports.
var (
	_ port.Source        = (*github.Source)(nil)
	_ port.CandidatePool = (*repository.PostgresPool)(nil)
	_ port.PickCache     = (*cache.PickCache)(nil)
	_ port.Recommender   = (*service.PicksService)(nil)
)
