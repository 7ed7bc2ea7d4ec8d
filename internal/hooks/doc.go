// Package hooks runs the configured pre-commit scripts.
//
// A script name resolves in one of two ways:
//
//	[scripts.lint]                 # .precommit.toml
//	command = "golangci-lint run"  # runs as: sh -c "golangci-lint run"
//
//	"scripts": {"test": "jest"}    # package.json, runs as: npm run test --silent
//
// The runner binary for package scripts is npm unless configured otherwise.
//
// Scripts run sequentially in the repository root with the parent's stdin,
// stdout and stderr, so tools that detect a terminal keep their colors.
// The first failing script stops the pipeline and is reported as a
// [ScriptError] carrying its exit code.
package hooks
