package domain

// Invocation describes the parameters of one carthage run.
// It is constructed fresh per orchestrator call and consumed once.
type Invocation struct {
	Action          Action
	ExtraArgs       []string
	Platform        Platform
	UseBuildCache   bool
	DerivedDataPath string
}

// Argv assembles the full argument vector for the given tool path.
// The order is fixed: tool, action, extra arguments verbatim, --platform,
// optionally --cache-builds, and --derived-data as the final pair.
func (i *Invocation) Argv(toolPath string) []string {
	argv := make([]string, 0, 7+len(i.ExtraArgs))
	argv = append(argv, toolPath, i.Action.String())
	argv = append(argv, i.ExtraArgs...)
	argv = append(argv, "--platform", i.Platform.Name())
	if i.UseBuildCache {
		argv = append(argv, "--cache-builds")
	}
	argv = append(argv, "--derived-data", i.DerivedDataPath)
	return argv
}

// Command is the executable description handed to the command runner.
type Command struct {
	// Args is the full argument vector, Args[0] being the executable.
	Args []string
	// Dir is the working directory for the process.
	Dir string
	// Env contains environment overrides applied on top of the host environment.
	Env map[string]string
}
