package settings

const (
	AuthModeWindows = "windows"
	AuthModeSQL     = "sql"

	DefaultPort = 1433
)

// ConnectionSettings points at the SQL Server instance the desktop client
// shares with this service.
type ConnectionSettings struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"`
	Database               string `mapstructure:"database"`
	AuthMode               string `mapstructure:"auth_mode"`
	Username               string `mapstructure:"username"`
	Password               string `mapstructure:"password"`
	Encrypt                bool   `mapstructure:"encrypt"`
	TrustServerCertificate bool   `mapstructure:"trust_server_certificate"`
}
