package authz

import (
	"context"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
)

// Policies grant permission patterns to roles; "*" in a pattern matches any suffix
// ("warehouse:*" covers "warehouse:item-assignment:create").
const rbacModel = `
[request_definition]
r = sub, perm

[policy_definition]
p = sub, perm

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.perm, p.perm)
`

// Authorizer answers whether a role holds a permission string.
type Authorizer interface {
	Can(ctx context.Context, role, permission string) (bool, error)
	Reload(ctx context.Context) error
}

type casbinAuthorizer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewFromFile loads role policies from a casbin CSV policy file.
func NewFromFile(policyPath string) (Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("authz: parse model: %w", err)
	}
	enf, err := casbin.NewEnforcer(m, fileadapter.NewAdapter(policyPath))
	if err != nil {
		return nil, fmt.Errorf("authz: init enforcer: %w", err)
	}
	return &casbinAuthorizer{enforcer: enf}, nil
}

// NewFromPolicies builds an authorizer from in-memory (role, pattern) pairs.
func NewFromPolicies(policies [][]string) (Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("authz: parse model: %w", err)
	}
	enf, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: init enforcer: %w", err)
	}
	for _, p := range policies {
		if _, err := enf.AddPolicy(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("authz: add policy: %w", err)
		}
	}
	return &casbinAuthorizer{enforcer: enf}, nil
}

func (a *casbinAuthorizer) Can(ctx context.Context, role, permission string) (bool, error) {
	if role == "" {
		return false, nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	ok, err := a.enforcer.Enforce(role, permission)
	if err != nil {
		return false, fmt.Errorf("authz: enforce: %w", err)
	}
	if !ok {
		logger.Debug("authz denied", zap.String("role", role), zap.String("permission", permission))
	}
	return ok, nil
}

func (a *casbinAuthorizer) Reload(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("authz: reload policy: %w", err)
	}
	logger.Info("authz policy reloaded")
	return nil
}
