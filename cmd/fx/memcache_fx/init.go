package memcache_fx

import (
	mem "entlead/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideSessions)

func provideSessions() mem.SessionStore {
	return mem.NewSessions()
}
