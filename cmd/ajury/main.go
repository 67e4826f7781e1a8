// Package main provides the CLI entry point for the agentic jury.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthropics/agentic-jury/internal/config"
	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/jury"
	"github.com/anthropics/agentic-jury/internal/report"
	"github.com/anthropics/agentic-jury/internal/terminal"
	"github.com/anthropics/agentic-jury/internal/voting"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	workspace       string
	goal            string
	agentOutputFile string
	strategyName    string
	tiePolicy       string
	errorPolicy     string
	concurrency     int
	timeout         time.Duration
	noConfig        bool
	verbose         bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:   "ajury",
		Short: "Agentic jury - score agent output with a jury of judges",
		Long: `Run a configured jury of judges (file checks, command checks,
agent-graded checks) against a workspace and aggregate their judgments
with a voting strategy.

Exit codes:
  0 - Jury passed
  1 - Jury failed or abstained
  2 - Error
  130 - Interrupted`,
		RunE:          runVote,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Configuration flags (defaults are resolved via config.Resolve with precedence: flag > env > config > default)
	rootCmd.Flags().StringVarP(&workspace, "workspace", "w", ".",
		"Workspace directory the judges evaluate")
	rootCmd.Flags().StringVarP(&goal, "goal", "g", "",
		"Goal the agent was given (env: AJURY_GOAL)")
	rootCmd.Flags().StringVar(&agentOutputFile, "agent-output", "",
		"File containing the agent output to grade")
	rootCmd.Flags().StringVarP(&strategyName, "strategy", "s", "",
		"Voting strategy: majority, average, weighted, median, consensus (default: majority, env: AJURY_STRATEGY)")
	rootCmd.Flags().StringVar(&tiePolicy, "tie-policy", "",
		"Majority tie resolution: pass, fail, abstain (default: fail, env: AJURY_TIE_POLICY)")
	rootCmd.Flags().StringVar(&errorPolicy, "error-policy", "",
		"Errored-judge handling: treat_as_fail, treat_as_abstain, ignore (default: treat_as_fail, env: AJURY_ERROR_POLICY)")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0,
		"Max concurrent judges (default: all at once, env: AJURY_CONCURRENCY)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0,
		"Timeout for the whole vote (default: 10m, env: AJURY_TIMEOUT)")
	rootCmd.Flags().BoolVar(&noConfig, "no-config", false,
		"Skip loading .ajury.yaml config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print individual judgments as they are rendered")

	rootCmd.AddCommand(newStrategiesCmd())

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		if exitErr, ok := err.(exitCodeError); ok {
			return exitErr.code.Int()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitError.Int()
	}

	return 0
}

func runVote(cmd *cobra.Command, _ []string) error {
	// Disable colors if stdout is not a TTY
	if !terminal.IsStdoutTTY() {
		terminal.DisableColors()
	}

	logger := terminal.NewLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr)
		logger.Log("Interrupted, shutting down...", terminal.StyleWarning)
		cancel()
	}()

	// Load config file (unless --no-config)
	var cfg *config.Config
	if !noConfig {
		result, err := config.LoadFromDirWithWarnings(workspace)
		if err != nil {
			logger.Logf(terminal.StyleError, "Config error: %v", err)
			return exitCode(domain.ExitError)
		}
		cfg = result.Config
		for _, warning := range result.Warnings {
			logger.Logf(terminal.StyleWarning, "Warning: %s", warning)
		}
	}

	flagState := config.FlagState{
		StrategySet:    cmd.Flags().Changed("strategy"),
		TiePolicySet:   cmd.Flags().Changed("tie-policy"),
		ErrorPolicySet: cmd.Flags().Changed("error-policy"),
		ConcurrencySet: cmd.Flags().Changed("concurrency"),
		TimeoutSet:     cmd.Flags().Changed("timeout"),
		GoalSet:        cmd.Flags().Changed("goal"),
	}
	envState := config.LoadEnvState()
	flagValues := config.ResolvedConfig{
		Strategy:    strategyName,
		TiePolicy:   tiePolicy,
		ErrorPolicy: errorPolicy,
		Concurrency: concurrency,
		Timeout:     timeout,
		Goal:        goal,
	}

	// Resolve final configuration (precedence: flags > env vars > config file > defaults)
	resolved := config.Resolve(cfg, envState, flagState, flagValues)

	strategy, err := voting.New(resolved.Strategy,
		voting.TiePolicy(resolved.TiePolicy), voting.ErrorPolicy(resolved.ErrorPolicy))
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	var judgeConfigs []config.JudgeConfig
	var weights map[string]float64
	if cfg != nil {
		judgeConfigs = cfg.Judges
		weights = cfg.Weights
	}
	if len(judgeConfigs) == 0 {
		logger.Logf(terminal.StyleError, "No judges configured; add a judges section to %s", config.ConfigFileName)
		return exitCode(domain.ExitError)
	}

	judges, err := buildJudges(judgeConfigs)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	jc := domain.JudgmentContext{
		Goal:      resolved.Goal,
		Workspace: workspace,
	}
	if agentOutputFile != "" {
		data, err := os.ReadFile(agentOutputFile)
		if err != nil {
			logger.Logf(terminal.StyleError, "Failed to read agent output: %v", err)
			return exitCode(domain.ExitError)
		}
		jc.AgentOutput = string(data)
	}

	spinner := terminal.NewSpinner(len(judges))
	panel, err := jury.NewSimpleJury(strategy, jury.Config{
		Weights:     weights,
		Concurrency: resolved.Concurrency,
		Completed:   spinner.Completed(),
	}, judges...)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	logger.Logf(terminal.StyleInfo, "Voting with %s over %d judges", strategy.Name(), len(judges))

	spinnerCtx, spinnerCancel := context.WithCancel(context.Background())
	spinnerDone := make(chan struct{})
	go func() {
		spinner.Run(spinnerCtx)
		close(spinnerDone)
	}()

	voteCtx, voteCancel := context.WithTimeout(ctx, resolved.Timeout)
	defer voteCancel()

	start := time.Now()
	verdict, err := panel.Vote(voteCtx, jc)
	wallClock := time.Since(start)

	spinnerCancel()
	<-spinnerDone

	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}
	if ctx.Err() != nil {
		return exitCode(domain.ExitInterrupted)
	}

	if verbose {
		for _, nj := range verdict.Individual {
			logger.Logf(terminal.StyleDim, "%s: %s: %s", nj.Name, nj.Judgment.Status, nj.Judgment.Reasoning)
		}
	}

	fmt.Println(report.RenderVerdict(verdict, wallClock))

	if verdict.Pass() {
		return exitCode(domain.ExitPass)
	}
	return exitCode(domain.ExitFail)
}
