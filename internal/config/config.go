// Package config provides configuration file support for ajury.
package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/anthropics/agentic-jury/internal/voting"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = ".ajury.yaml"

// Duration is a custom type that handles YAML duration parsing.
// Supports both Go duration format ("5m", "300s") and numeric seconds.
type Duration time.Duration

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	case int:
		*d = Duration(time.Duration(v) * time.Second)
	case float64:
		*d = Duration(time.Duration(v) * time.Second)
	default:
		return fmt.Errorf("invalid duration type: %T", v)
	}
	return nil
}

// AsDuration returns the underlying time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// JudgeKinds are the built-in judge kinds accepted in the judges section.
var JudgeKinds = []string{"file", "command", "agent"}

// FileCheckConfig is one file assertion for a file judge.
type FileCheckConfig struct {
	Path    string `yaml:"path"`
	Pattern string `yaml:"pattern"`
}

// JudgeConfig declares one judge in the jury.
type JudgeConfig struct {
	Kind    string            `yaml:"kind"`
	Name    string            `yaml:"name"`
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Files   []FileCheckConfig `yaml:"files"`
}

// Config represents the ajury configuration file.
type Config struct {
	Strategy    *string            `yaml:"strategy"`
	TiePolicy   *string            `yaml:"tie_policy"`
	ErrorPolicy *string            `yaml:"error_policy"`
	Concurrency *int               `yaml:"concurrency"`
	Timeout     *Duration          `yaml:"timeout"`
	Goal        *string            `yaml:"goal"`
	Weights     map[string]float64 `yaml:"weights"`
	Judges      []JudgeConfig      `yaml:"judges"`
}

// LoadResult contains the loaded config and any warnings encountered.
type LoadResult struct {
	Config   *Config
	Warnings []string
}

// LoadFromDirWithWarnings reads .ajury.yaml from the specified directory.
// Returns an empty config (not error) if the file doesn't exist.
func LoadFromDirWithWarnings(dir string) (*LoadResult, error) {
	return LoadFromPathWithWarnings(dir + "/" + ConfigFileName)
}

// LoadFromPathWithWarnings reads a config file and returns warnings for
// unknown keys. Returns an empty config (not error) if the file doesn't
// exist. Returns an error if the file exists but is invalid YAML or fails
// validation.
func LoadFromPathWithWarnings(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &LoadResult{Config: &Config{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	warnings := checkUnknownKeys(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}

	return &LoadResult{Config: &cfg, Warnings: warnings}, nil
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	if c.Strategy != nil && !slices.Contains(voting.SupportedStrategies, *c.Strategy) {
		return fmt.Errorf("strategy must be one of %v, got %q", voting.SupportedStrategies, *c.Strategy)
	}
	if c.TiePolicy != nil && !slices.Contains([]string{"pass", "fail", "abstain"}, *c.TiePolicy) {
		return fmt.Errorf("tie_policy must be one of [pass fail abstain], got %q", *c.TiePolicy)
	}
	if c.ErrorPolicy != nil && !slices.Contains([]string{"treat_as_fail", "treat_as_abstain", "ignore"}, *c.ErrorPolicy) {
		return fmt.Errorf("error_policy must be one of [treat_as_fail treat_as_abstain ignore], got %q", *c.ErrorPolicy)
	}
	if c.Concurrency != nil && *c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, got %d", *c.Concurrency)
	}
	if c.Timeout != nil && *c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %s", time.Duration(*c.Timeout))
	}
	for name, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("weight for %q must be >= 0, got %v", name, w)
		}
	}
	for i, j := range c.Judges {
		if err := j.validate(); err != nil {
			return fmt.Errorf("judge %d: %w", i+1, err)
		}
	}
	return nil
}

func (j JudgeConfig) validate() error {
	if !slices.Contains(JudgeKinds, j.Kind) {
		return fmt.Errorf("kind must be one of %v, got %q", JudgeKinds, j.Kind)
	}
	switch j.Kind {
	case "file":
		if len(j.Files) == 0 {
			return fmt.Errorf("file judge needs at least one entry under files")
		}
		for _, f := range j.Files {
			if f.Path == "" {
				return fmt.Errorf("file check needs a path")
			}
			if f.Pattern != "" {
				if _, err := regexp.Compile(f.Pattern); err != nil {
					return fmt.Errorf("invalid pattern %q: %w", f.Pattern, err)
				}
			}
		}
	case "command", "agent":
		if j.Command == "" {
			return fmt.Errorf("%s judge needs a command", j.Kind)
		}
	}
	return nil
}

// knownTopLevelKeys are the valid top-level keys in the config file.
var knownTopLevelKeys = []string{"strategy", "tie_policy", "error_policy", "concurrency", "timeout", "goal", "weights", "judges"}

// knownJudgeKeys are the valid keys for entries in the judges list.
var knownJudgeKeys = []string{"kind", "name", "command", "args", "files"}

// checkUnknownKeys checks for unknown keys in the YAML data and returns warnings.
func checkUnknownKeys(data []byte) []string {
	var warnings []string

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// If we can't parse, let the main parser handle the error
		return nil
	}

	for key := range raw {
		if !slices.Contains(knownTopLevelKeys, key) {
			warning := fmt.Sprintf("unknown key %q in %s", key, ConfigFileName)
			if suggestion := findSimilar(key, knownTopLevelKeys); suggestion != "" {
				warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			warnings = append(warnings, warning)
		}
	}

	if judges, ok := raw["judges"].([]any); ok {
		for i, entry := range judges {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			for key := range m {
				if !slices.Contains(knownJudgeKeys, key) {
					warning := fmt.Sprintf("unknown key %q in judge %d of %s", key, i+1, ConfigFileName)
					if suggestion := findSimilar(key, knownJudgeKeys); suggestion != "" {
						warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
					}
					warnings = append(warnings, warning)
				}
			}
		}
	}

	return warnings
}

// findSimilar finds the most similar string from candidates using Levenshtein distance.
// Returns empty string if no candidate is similar enough (threshold: 3 edits).
func findSimilar(input string, candidates []string) string {
	const maxDistance = 3
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		dist := levenshtein(input, candidate)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Defaults holds the built-in default values.
var Defaults = ResolvedConfig{
	Strategy:    "majority",
	TiePolicy:   "fail",
	ErrorPolicy: "treat_as_fail",
	Concurrency: 0, // means "all judges at once"
	Timeout:     10 * time.Minute,
}

// ResolvedConfig holds the final resolved configuration values.
type ResolvedConfig struct {
	Strategy    string
	TiePolicy   string
	ErrorPolicy string
	Concurrency int
	Timeout     time.Duration
	Goal        string
}

// FlagState tracks whether a flag was explicitly set.
type FlagState struct {
	StrategySet    bool
	TiePolicySet   bool
	ErrorPolicySet bool
	ConcurrencySet bool
	TimeoutSet     bool
	GoalSet        bool
}

// EnvState captures env var values and whether they were set.
type EnvState struct {
	Strategy       string
	StrategySet    bool
	TiePolicy      string
	TiePolicySet   bool
	ErrorPolicy    string
	ErrorPolicySet bool
	Concurrency    int
	ConcurrencySet bool
	Timeout        time.Duration
	TimeoutSet     bool
	Goal           string
	GoalSet        bool
}

// LoadEnvState reads environment variables and returns their state.
func LoadEnvState() EnvState {
	var state EnvState

	if v := os.Getenv("AJURY_STRATEGY"); v != "" {
		state.Strategy = v
		state.StrategySet = true
	}
	if v := os.Getenv("AJURY_TIE_POLICY"); v != "" {
		state.TiePolicy = v
		state.TiePolicySet = true
	}
	if v := os.Getenv("AJURY_ERROR_POLICY"); v != "" {
		state.ErrorPolicy = v
		state.ErrorPolicySet = true
	}
	if v := os.Getenv("AJURY_CONCURRENCY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			state.Concurrency = i
			state.ConcurrencySet = true
		}
	}
	if v := os.Getenv("AJURY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			state.Timeout = d
			state.TimeoutSet = true
		} else if secs, err := strconv.Atoi(v); err == nil {
			state.Timeout = time.Duration(secs) * time.Second
			state.TimeoutSet = true
		}
	}
	if v := os.Getenv("AJURY_GOAL"); v != "" {
		state.Goal = v
		state.GoalSet = true
	}

	return state
}

// Resolve merges config file values with env vars and flags.
// Precedence: flags > env vars > config file > defaults
func Resolve(cfg *Config, envState EnvState, flagState FlagState, flagValues ResolvedConfig) ResolvedConfig {
	result := Defaults

	// Apply config file values (if set)
	if cfg != nil {
		if cfg.Strategy != nil {
			result.Strategy = *cfg.Strategy
		}
		if cfg.TiePolicy != nil {
			result.TiePolicy = *cfg.TiePolicy
		}
		if cfg.ErrorPolicy != nil {
			result.ErrorPolicy = *cfg.ErrorPolicy
		}
		if cfg.Concurrency != nil {
			result.Concurrency = *cfg.Concurrency
		}
		if cfg.Timeout != nil {
			result.Timeout = cfg.Timeout.AsDuration()
		}
		if cfg.Goal != nil {
			result.Goal = *cfg.Goal
		}
	}

	// Apply env vars (if set)
	if envState.StrategySet {
		result.Strategy = envState.Strategy
	}
	if envState.TiePolicySet {
		result.TiePolicy = envState.TiePolicy
	}
	if envState.ErrorPolicySet {
		result.ErrorPolicy = envState.ErrorPolicy
	}
	if envState.ConcurrencySet {
		result.Concurrency = envState.Concurrency
	}
	if envState.TimeoutSet {
		result.Timeout = envState.Timeout
	}
	if envState.GoalSet {
		result.Goal = envState.Goal
	}

	// Apply flags (if set)
	if flagState.StrategySet {
		result.Strategy = flagValues.Strategy
	}
	if flagState.TiePolicySet {
		result.TiePolicy = flagValues.TiePolicy
	}
	if flagState.ErrorPolicySet {
		result.ErrorPolicy = flagValues.ErrorPolicy
	}
	if flagState.ConcurrencySet {
		result.Concurrency = flagValues.Concurrency
	}
	if flagState.TimeoutSet {
		result.Timeout = flagValues.Timeout
	}
	if flagState.GoalSet {
		result.Goal = flagValues.Goal
	}

	return result
}
