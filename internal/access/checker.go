// Package access evaluates the permission rules that protect cross-file
// links. Rules are CEL expressions over a `user` map (and optionally the
// destination `screen`), e.g. `"admin" in user.roles`.
package access

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// ErrAccessDenied indicates a permission rule evaluated to false. The
// protected operation is aborted and no trail state changes.
var ErrAccessDenied = errors.New("access denied")

// Checker compiles and evaluates access rules against user attributes.
type Checker struct {
	env *cel.Env
}

// NewChecker creates a checker whose rule environment exposes the `user`
// and `screen` variables plus the string and list extension libraries.
func NewChecker() (*Checker, error) {
	env, err := cel.NewEnv(
		cel.Variable("user", cel.DynType),
		cel.Variable("screen", cel.DynType),
		celext.Strings(),
		celext.Lists(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule environment: %w", err)
	}
	return &Checker{env: env}, nil
}

// CheckAccess evaluates a rule for a user. An empty rule always allows.
// A rule that does not compile, does not evaluate, or does not produce a
// boolean is an error, distinct from a clean denial.
func (c *Checker) CheckAccess(user map[string]any, rule string) (bool, error) {
	return c.CheckAccessWithScreen(user, nil, rule)
}

// CheckAccessWithScreen evaluates a rule with destination screen metadata
// bound alongside the user attributes.
func (c *Checker) CheckAccessWithScreen(user, screen map[string]any, rule string) (bool, error) {
	if rule == "" {
		return true, nil
	}
	ast, issues := c.env.Compile(rule)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("rule compilation error: %w", issues.Err())
	}
	prg, err := c.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("rule program error: %w", err)
	}
	if user == nil {
		user = map[string]any{}
	}
	if screen == nil {
		screen = map[string]any{}
	}
	result, _, err := prg.Eval(map[string]any{
		"user":   user,
		"screen": screen,
	})
	if err != nil {
		return false, fmt.Errorf("rule evaluation error: %w", err)
	}
	allowed, ok := result.(types.Bool)
	if !ok {
		return false, fmt.Errorf("rule %q did not produce a boolean, got %v", rule, result.Type())
	}
	return bool(allowed), nil
}

// Denial wraps ErrAccessDenied with the rule that rejected the user, for a
// user-facing denial message.
func Denial(rule string) error {
	return fmt.Errorf("%w by rule %q", ErrAccessDenied, rule)
}
