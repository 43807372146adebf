package access

import (
	"fmt"
	"sort"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

var knownRuleVars = map[string]bool{
	"user":   true,
	"screen": true,
}

// ValidateRule parses a rule and rejects references to variables other than
// `user` and `screen`. Menu documents are validated at load time so a typo
// in a rule surfaces before any navigation reaches the protected link.
func (c *Checker) ValidateRule(rule string) error {
	if rule == "" {
		return nil
	}
	refs, err := c.RuleRefs(rule)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if !knownRuleVars[ref] {
			return fmt.Errorf("rule %q references unknown variable %q", rule, ref)
		}
	}
	return nil
}

// RuleRefs returns the sorted root identifiers a rule references, extracted
// from the parsed proto AST.
func (c *Checker) RuleRefs(rule string) ([]string, error) {
	ast, issues := c.env.Parse(rule)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("rule parse error: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("rule AST conversion error: %w", err)
	}

	seen := map[string]bool{}
	collectIdents(parsed.GetExpr(), seen)

	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}
	sort.Strings(refs)
	return refs, nil
}

// collectIdents walks a proto expression tree gathering identifier names.
func collectIdents(expr *exprpb.Expr, seen map[string]bool) {
	if expr == nil {
		return
	}

	switch expr.ExprKind.(type) {
	case *exprpb.Expr_IdentExpr:
		if id := expr.GetIdentExpr(); id != nil {
			seen[id.Name] = true
		}

	case *exprpb.Expr_SelectExpr:
		if sel := expr.GetSelectExpr(); sel != nil {
			collectIdents(sel.Operand, seen)
		}

	case *exprpb.Expr_CallExpr:
		call := expr.GetCallExpr()
		if call == nil {
			return
		}
		collectIdents(call.Target, seen)
		for _, arg := range call.Args {
			collectIdents(arg, seen)
		}

	case *exprpb.Expr_ListExpr:
		for _, elem := range expr.GetListExpr().GetElements() {
			collectIdents(elem, seen)
		}

	case *exprpb.Expr_StructExpr:
		for _, entry := range expr.GetStructExpr().GetEntries() {
			collectIdents(entry.GetMapKey(), seen)
			collectIdents(entry.GetValue(), seen)
		}

	case *exprpb.Expr_ComprehensionExpr:
		comp := expr.GetComprehensionExpr()
		if comp == nil {
			return
		}
		collectIdents(comp.IterRange, seen)
		collectIdents(comp.AccuInit, seen)
		collectIdents(comp.LoopCondition, seen)
		collectIdents(comp.LoopStep, seen)
		collectIdents(comp.Result, seen)
		// Loop-local variables are not external references.
		delete(seen, comp.IterVar)
		delete(seen, comp.AccuVar)
	}
}
