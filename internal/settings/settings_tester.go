package settings

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pinger opens a connection for a DSN and checks it answers.
type Pinger interface {
	Ping(ctx context.Context, dsn string) error
}

type sqlServerPinger struct{}

func NewSQLServerPinger() Pinger {
	return sqlServerPinger{}
}

func (sqlServerPinger) Ping(ctx context.Context, dsn string) error {
	db, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return sqlDB.PingContext(ctx)
}

// BuildDSN renders the sqlserver:// URL understood by go-mssqldb. Windows
// authentication leaves the user info empty so the driver falls back to SSPI.
func BuildDSN(s ConnectionSettings) string {
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}

	q := url.Values{}
	q.Set("database", s.Database)
	q.Set("encrypt", strconv.FormatBool(s.Encrypt))
	q.Set("TrustServerCertificate", strconv.FormatBool(s.TrustServerCertificate))
	q.Set("app name", "go-hrms")

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     net.JoinHostPort(s.Host, strconv.Itoa(port)),
		RawQuery: q.Encode(),
	}
	if s.AuthMode == AuthModeSQL {
		u.User = url.UserPassword(s.Username, s.Password)
	}
	return u.String()
}
