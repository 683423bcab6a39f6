package rbac

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListRoles() ([]domain.RoleResponse, error)
	UpdateRolePermissions(ctx context.Context, role string, permissions []string) (domain.RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

// LoadPolicy replaces the in-memory policy with the persisted one, seeding
// the default role table when nothing has been stored yet.
func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		s.logger.Error("failed to list rbac policies", zap.Error(err))
		return err
	}

	if len(rows) == 0 {
		rows = defaultPolicies()
		if err := s.repo.SeedPolicies(ctx, rows); err != nil {
			s.logger.Error("failed to seed rbac policies", zap.Error(err))
			return err
		}
		s.logger.Info("seeded default rbac policies", zap.Int("count", len(rows)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyUnlocked(rows)
}

func (s *service) applyUnlocked(rows []PolicyRow) error {
	s.enforcer.ClearPolicy()

	for role, parents := range roleParents {
		for _, parent := range parents {
			if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
				return err
			}
		}
	}

	for _, row := range rows {
		if _, err := s.enforcer.AddPolicy(row.Role, row.Resource, row.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("policies", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles() ([]domain.RoleResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := make([]domain.RoleResponse, 0, len(Roles))
	for _, role := range Roles {
		r, err := s.roleUnlocked(role)
		if err != nil {
			return nil, err
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *service) roleUnlocked(role string) (domain.RoleResponse, error) {
	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, p[1]+":"+p[2])
	}
	slices.Sort(out)
	out = slices.Compact(out)

	return domain.RoleResponse{Name: role, Permissions: out}, nil
}

func (s *service) UpdateRolePermissions(ctx context.Context, role string, permissions []string) (domain.RoleResponse, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !slices.Contains(Roles, role) {
		return domain.RoleResponse{}, rbacerrors.ErrUnknownRole
	}
	if role == RoleAdmin {
		return domain.RoleResponse{}, rbacerrors.ErrAdminLocked
	}

	rows := make([]PolicyRow, 0, len(permissions))
	seen := make(map[string]struct{}, len(permissions))
	for _, perm := range permissions {
		row, err := parsePermission(role, perm)
		if err != nil {
			s.logger.Warn("invalid permission", zap.String("role", role), zap.String("permission", perm))
			return domain.RoleResponse{}, err
		}
		key := row.Resource + ":" + row.Action
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}

	if err := s.repo.ReplaceRolePolicies(ctx, role, rows); err != nil {
		s.logger.Error("failed to store role policies", zap.String("role", role), zap.Error(err))
		return domain.RoleResponse{}, err
	}

	all, err := s.repo.ListPolicies(ctx)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyUnlocked(all); err != nil {
		return domain.RoleResponse{}, err
	}

	s.logger.Info("role permissions updated", zap.String("role", role), zap.Int("count", len(rows)))
	return s.roleUnlocked(role)
}

func parsePermission(role, perm string) (PolicyRow, error) {
	resource, action, ok := strings.Cut(strings.TrimSpace(perm), ":")
	if !ok {
		return PolicyRow{}, rbacerrors.ErrInvalidPermission
	}
	if resource != "*" && !slices.Contains(Resources, resource) {
		return PolicyRow{}, rbacerrors.ErrInvalidPermission
	}
	if action != "*" && !slices.Contains(Actions, action) {
		return PolicyRow{}, rbacerrors.ErrInvalidPermission
	}
	return PolicyRow{Role: role, Resource: resource, Action: action}, nil
}
