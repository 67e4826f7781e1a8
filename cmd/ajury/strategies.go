package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/agentic-jury/internal/voting"
)

// strategyDescriptions maps strategy keys to one-line help text.
var strategyDescriptions = map[string]string{
	"majority":  "Most pass/fail votes wins; ties follow --tie-policy",
	"average":   "Mean normalized score, passes at 0.5 or above",
	"weighted":  "Weighted mean of normalized scores using configured weights",
	"median":    "Median normalized score, robust to outlier judges",
	"consensus": "Passes only if every judge passes",
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available voting strategies",
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range voting.SupportedStrategies {
				fmt.Printf("  %-10s %s\n", name, strategyDescriptions[name])
			}
		},
	}
}
