package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"station-report/internal/config"
	"station-report/internal/report/model"
	"station-report/internal/report/service"
	"station-report/internal/utils"
)

func newExtractCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print report metadata, filtered rows and total as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tr, err := model.ParseTimeRange(from, to)
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rep, err := service.NewExtractor(cfg.Layout(), nil).Extract(b)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			res := service.NewFilter(cfg.TimeColumn, cfg.AmountColumn).Apply(rep.Rows, tr)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"sheet":          rep.Sheet,
				"day":            rep.Metadata.Day(),
				"metadata":       rep.Metadata,
				"columns":        res.Columns,
				"rows":           res.Rows,
				"total":          json.Number(res.Total.String()),
				"totalFormatted": utils.FormatVND(res.Total),
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "window start, HH:MM (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "window end, HH:MM (exclusive)")
	return cmd
}
