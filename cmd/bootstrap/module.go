package bootstrap

import (
	"campus-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	ValidationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
