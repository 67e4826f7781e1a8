package domain

// JudgmentContext is the shared input all judges in one vote evaluate
// against. It is immutable for the duration of the vote; concurrent judges
// may read it without coordination.
type JudgmentContext struct {
	// Goal describes what the agent was asked to accomplish.
	Goal string
	// Workspace is the directory the agent worked in.
	Workspace string
	// AgentOutput is the agent's captured output, if any.
	AgentOutput string
	// AgentExitCode is the agent process exit code (0 on success).
	AgentExitCode int
	// AgentErr is the agent execution error, if the run itself failed.
	AgentErr error
}
