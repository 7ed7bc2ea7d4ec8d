package runner

const skipping = "Skipping the pre-commit hook."

const (
	msgBinary = "Failed to locate the `%s` binary, make sure it's installed in your $PATH.\n" +
		skipping

	msgStatus = "Failed to retrieve the `git status` from the project.\n" +
		skipping

	msgRoot = "Failed to find the root of this git repository, cannot locate the configuration.\n" +
		skipping

	msgConfig = "Received an error while parsing or locating the `package.json` or `.precommit.toml` file:\n" +
		"\n" +
		"  %s\n" +
		"\n" +
		skipping

	msgEmpty = "No changes detected.\n" +
		skipping

	msgNothing = "We have no pre-commit hooks to run. Either you're missing the `scripts`\n" +
		"in your `package.json` or have configured pre-commit to run nothing.\n" +
		skipping

	msgSetup = "Error preparing repository for pre-commit hook scripts to run: %v\n" +
		"\n" +
		"Your changes may have been stashed already. If the top entry of\n" +
		"`git stash list` is labelled `pre-commit stash`, run `git stash pop`\n" +
		"to restore them.\n" +
		skipping

	msgCleanup = "Unable to reset/clean and re-apply the pre-commit stash: %v\n" +
		"\n" +
		"Please fix any errors printed by git then re-run `git stash pop` to\n" +
		"restore the working directory to its previous state. The entry to\n" +
		"restore is the top one, labelled `pre-commit stash`."

	msgRestore = "Unable to reset/clean the working directory after running the\n" +
		"pre-commit hook scripts: %v\n" +
		"\n" +
		"The pre-commit stash was already re-applied; do not run `git stash pop`.\n" +
		"Files written by the scripts may still be in the working directory."

	msgFailure = "We've failed to pass the specified git pre-commit hooks as the `%s`\n" +
		"hook returned an exit code (%d). If you're feeling adventurous you can\n" +
		"skip the git pre-commit hooks by adding the following flags to your commit:\n" +
		"\n" +
		"  git commit -n (or --no-verify)\n" +
		"\n" +
		"This is ill-advised since the commit is broken."

	msgUnknown = "Script `%s` is not defined in `package.json` or `.precommit.toml`."
)
