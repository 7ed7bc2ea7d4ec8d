// Package doctor diagnoses why the pre-commit hook would not run as
// expected.
//
// Checks, in order:
//
//   - [CategoryEnv]: git is on PATH, the directory is inside a repository,
//     and the script runner exists if any script needs it.
//
//   - [CategoryHook]: the pre-commit hook is installed and is ours.
//
//   - [CategoryConfig]: the configuration loads, something is configured to
//     run, and every script name resolves (with "did you mean" hints).
//
// Each [Issue] carries a description, a manual hint and, where possible,
// a FixAction applied by [Fix].
package doctor
