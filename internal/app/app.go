package app

import (
	"database/sql"

	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, 5,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")

	if err := cfg.validateAPI(); err != nil {
		return nil, err
	}

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	infra := infrastructure{gormDB: gormDB, sqlDB: sqlDB}
	logger.Info("database connection established")

	infra.rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		infra.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	if err := Migrate(gormDB); err != nil {
		infra.Close()
		return nil, err
	}
	logger.Info("schema migrated")

	if err := registerModules(router, cfg, infra); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
