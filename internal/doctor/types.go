package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnv represents missing binaries.
	CategoryEnv IssueCategory = "env"
	// CategoryHook represents problems with the installed git hook.
	CategoryHook IssueCategory = "hook"
	// CategoryConfig represents problems with the hook configuration.
	CategoryConfig IssueCategory = "config"
)

// FixInstall is the FixAction of issues resolved by (re)installing the hook.
const FixInstall = "install"

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // binary, hook path or script name
	Description string        // human-readable description
	FixAction   string        // what --fix would do; empty if manual
	Hint        string        // how to fix it by hand
	Category    IssueCategory // issue category
}

// categories lists categories in report order.
var categories = []struct {
	id    IssueCategory
	title string
}{
	{CategoryEnv, "Environment"},
	{CategoryHook, "Git hook"},
	{CategoryConfig, "Configuration"},
}
