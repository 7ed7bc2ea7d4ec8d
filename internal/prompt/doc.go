// Package prompt provides the interactive prompts used by `precommit init`.
//
// Available prompts:
//   - [Confirm]: yes/no question with a default answer
//   - [MultiSelect]: pick any number of scripts from a fuzzy-filtered list
//   - [TextInput]: single-line text input
//
// Each prompt renders to stderr so stdout stays free for command output.
// Every result carries a Cancelled flag set when the user pressed esc or
// ctrl+c.
package prompt
