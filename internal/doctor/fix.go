package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/precommit/internal/install"
	"github.com/raphi011/precommit/internal/output"
)

// Fix applies the automatic fixes of issues for the repository containing
// dir and returns how many were fixed.
func Fix(ctx context.Context, dir, binary string, issues []Issue) (int, error) {
	out := output.FromContext(ctx)
	var fixed int

	for _, issue := range issues {
		switch issue.FixAction {
		case FixInstall:
			if err := install.Install(ctx, dir, binary); err != nil {
				return fixed, fmt.Errorf("failed to install hook: %w", err)
			}
			out.Check(true, "Installed pre-commit hook")
			fixed++
		}
	}
	return fixed, nil
}

// Fixable reports whether any issue has an automatic fix.
func Fixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.FixAction != "" {
			return true
		}
	}
	return false
}
