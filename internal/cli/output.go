package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	return middleware.GetLoggerFromCtx(cmd.Context())
}

// render writes v to the command's stdout in the --output format. YAML goes
// through the JSON form so decimals keep their string rendering.
func render(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if format != "yaml" {
		_, err = fmt.Fprintln(out, string(raw))
		return err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
