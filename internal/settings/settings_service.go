package settings

import (
	"context"
	"strings"
	"time"

	settingserrors "go-hrms/internal/settings/errors"

	"go.uber.org/zap"
)

// PasswordMask is echoed instead of the stored password. Sending it back
// unchanged keeps the stored value.
const PasswordMask = "********"

const DefaultTestTimeout = 10 * time.Second

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get() (ConnectionSettingsResponse, error)
	Save(req ConnectionSettingsRequest) (ConnectionSettingsResponse, error)
	Test(ctx context.Context, req ConnectionSettingsRequest) (ConnectionTestResult, error)
}

type service struct {
	repo    Repository
	pinger  Pinger
	timeout time.Duration
	logger  *zap.Logger
}

func NewService(repo Repository, pinger Pinger, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, pinger: pinger, timeout: DefaultTestTimeout, logger: l}
}

func (s *service) Get() (ConnectionSettingsResponse, error) {
	cs, err := s.repo.Load()
	if err != nil {
		s.logger.Error("failed to load connection settings", zap.String("path", s.repo.Path()), zap.Error(err))
		return ConnectionSettingsResponse{}, settingserrors.ErrSettingsUnreadable
	}
	return toResponse(cs), nil
}

func (s *service) Save(req ConnectionSettingsRequest) (ConnectionSettingsResponse, error) {
	cs, err := s.resolve(req)
	if err != nil {
		return ConnectionSettingsResponse{}, err
	}

	if err := s.repo.Save(cs); err != nil {
		s.logger.Error("failed to save connection settings", zap.String("path", s.repo.Path()), zap.Error(err))
		return ConnectionSettingsResponse{}, settingserrors.ErrSettingsNotSaved
	}

	s.logger.Info("connection settings saved",
		zap.String("host", cs.Host),
		zap.String("database", cs.Database),
		zap.String("auth_mode", cs.AuthMode),
	)
	return toResponse(cs), nil
}

// Test pings the server described by req without persisting it. A failed
// connection is a result, not an error.
func (s *service) Test(ctx context.Context, req ConnectionSettingsRequest) (ConnectionTestResult, error) {
	cs, err := s.resolve(req)
	if err != nil {
		return ConnectionTestResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	pingErr := s.pinger.Ping(ctx, BuildDSN(cs))
	elapsed := time.Since(started).Milliseconds()

	if pingErr != nil {
		s.logger.Warn("connection test failed",
			zap.String("host", cs.Host),
			zap.String("database", cs.Database),
			zap.Error(pingErr),
		)
		return ConnectionTestResult{
			Success:    false,
			Message:    TranslateError(pingErr),
			Detail:     pingErr.Error(),
			DurationMs: elapsed,
		}, nil
	}

	s.logger.Info("connection test succeeded", zap.String("host", cs.Host), zap.Int64("duration_ms", elapsed))
	return ConnectionTestResult{Success: true, Message: "تم الاتصال بقاعدة البيانات بنجاح", DurationMs: elapsed}, nil
}

// resolve validates req and fills a masked or empty password from the stored settings.
func (s *service) resolve(req ConnectionSettingsRequest) (ConnectionSettings, error) {
	mode := strings.ToLower(strings.TrimSpace(req.AuthMode))
	if mode != AuthModeWindows && mode != AuthModeSQL {
		return ConnectionSettings{}, settingserrors.ErrInvalidAuthMode
	}

	cs := ConnectionSettings{
		Host:                   strings.TrimSpace(req.Host),
		Port:                   req.Port,
		Database:               strings.TrimSpace(req.Database),
		AuthMode:               mode,
		Encrypt:                req.Encrypt,
		TrustServerCertificate: req.TrustServerCertificate,
	}
	if cs.Port == 0 {
		cs.Port = DefaultPort
	}

	if mode == AuthModeWindows {
		return cs, nil
	}

	cs.Username = strings.TrimSpace(req.Username)
	cs.Password = req.Password
	if cs.Password == "" || cs.Password == PasswordMask {
		stored, err := s.repo.Load()
		if err != nil {
			return ConnectionSettings{}, settingserrors.ErrSettingsUnreadable
		}
		cs.Password = stored.Password
	}

	if cs.Username == "" || cs.Password == "" {
		return ConnectionSettings{}, settingserrors.ErrCredentialsRequired
	}
	return cs, nil
}

func toResponse(cs ConnectionSettings) ConnectionSettingsResponse {
	resp := ConnectionSettingsResponse{
		Host:                   cs.Host,
		Port:                   cs.Port,
		Database:               cs.Database,
		AuthMode:               cs.AuthMode,
		Username:               cs.Username,
		HasPassword:            cs.Password != "",
		Encrypt:                cs.Encrypt,
		TrustServerCertificate: cs.TrustServerCertificate,
	}
	if resp.HasPassword {
		resp.Password = PasswordMask
	}
	return resp
}
