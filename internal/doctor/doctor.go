package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/output"
)

// Run performs diagnostic checks for the repository containing dir.
// Problems are returned as issues; the error is reserved for failures of
// doctor itself.
func Run(ctx context.Context, dir string) ([]Issue, error) {
	var allIssues []Issue

	envIssues := checkEnv()
	allIssues = append(allIssues, withCategory(envIssues, CategoryEnv)...)
	if len(envIssues) > 0 {
		// nothing below works without git
		return allIssues, nil
	}

	root, err := git.TopLevel(ctx, dir)
	if err != nil {
		allIssues = append(allIssues, Issue{
			Key:         dir,
			Description: "not inside a git repository",
			Category:    CategoryEnv,
		})
		return allIssues, nil
	}

	allIssues = append(allIssues, withCategory(checkHook(ctx, root), CategoryHook)...)
	allIssues = append(allIssues, withCategory(checkConfig(root), CategoryConfig)...)

	return allIssues, nil
}

// withCategory sets the category of issues that don't have one yet.
func withCategory(issues []Issue, cat IssueCategory) []Issue {
	for i := range issues {
		if issues[i].Category == "" {
			issues[i].Category = cat
		}
	}
	return issues
}

// Report prints issues grouped by category.
func Report(ctx context.Context, issues []Issue) {
	out := output.FromContext(ctx)

	if len(issues) == 0 {
		out.Check(true, "No issues found")
		return
	}

	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	for _, cat := range categories {
		catIssues := byCategory[cat.id]
		if len(catIssues) == 0 {
			continue
		}
		out.Heading(cat.title)
		for _, issue := range catIssues {
			out.Check(false, fmt.Sprintf("%s: %s", issue.Key, issue.Description))
			if issue.Hint != "" {
				out.Printf("      %s\n", issue.Hint)
			}
		}
	}
}
