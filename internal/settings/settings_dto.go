package settings

type ConnectionSettingsRequest struct {
	Host                   string `json:"host" binding:"required,max=255"`
	Port                   int    `json:"port" binding:"omitempty,min=1,max=65535"`
	Database               string `json:"database" binding:"required,max=128"`
	AuthMode               string `json:"auth_mode" binding:"required"`
	Username               string `json:"username"`
	Password               string `json:"password"`
	Encrypt                bool   `json:"encrypt"`
	TrustServerCertificate bool   `json:"trust_server_certificate"`
}

type ConnectionSettingsResponse struct {
	Host                   string `json:"host"`
	Port                   int    `json:"port"`
	Database               string `json:"database"`
	AuthMode               string `json:"auth_mode"`
	Username               string `json:"username"`
	Password               string `json:"password"`
	HasPassword            bool   `json:"has_password"`
	Encrypt                bool   `json:"encrypt"`
	TrustServerCertificate bool   `json:"trust_server_certificate"`
}

type ConnectionTestResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}
