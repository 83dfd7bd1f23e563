package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/recurrence"
)

var flagAsOf string

var processDueCmd = &cobra.Command{
	Use:   "process-due",
	Short: "Materialize due recurring expenses once and print the result",
	RunE:  runProcessDue,
}

func init() {
	processDueCmd.Flags().StringVar(&flagAsOf, "as-of", "", "Run date as YYYY-MM-DD, defaults to today (UTC)")
}

func parseAsOf(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return recurrence.DateOnly(now.UTC()), nil
	}
	asOf, err := time.Parse(common.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--as-of: expected YYYY-MM-DD: %w", err)
	}
	return asOf, nil
}

func runProcessDue(cmd *cobra.Command, _ []string) error {
	asOf, err := parseAsOf(flagAsOf, time.Now())
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.scheduler.ProcessDue(cmd.Context(), asOf)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
