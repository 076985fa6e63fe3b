package main

import (
	"fmt"

	"github.com/roffe/columnchart/pkg/config"
	"github.com/roffe/columnchart/pkg/performance"
	"github.com/spf13/cobra"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var (
		dbPath string
		mock   bool
	)
	cmd := &cobra.Command{
		Use:   "seed [YYYY-MM=value ...]",
		Short: "Insert performance records into the SQLite store",
		Example: `  chartrender seed 2023-07=95.5 2023-08=45.5
  chartrender seed --mock --db perf.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !mock {
				return fmt.Errorf("no records given")
			}
			records := make([]performance.Record, 0, len(args))
			for _, arg := range args {
				r, err := performance.ParseRecord(arg)
				if err != nil {
					return err
				}
				records = append(records, r)
			}
			if mock {
				records = append(records, performance.MockData()...)
			}

			cfg, err := root.load()
			if err != nil {
				return err
			}
			cfg.Data.Backend = config.BackendSQLite
			if dbPath != "" {
				cfg.Data.SQLitePath = dbPath
			}
			dao, closeDAO, err := cfg.OpenDAO()
			if err != nil {
				return err
			}
			defer closeDAO()

			repo := performance.NewRepository(dao, cfg.PerformanceConfig())
			for _, r := range records {
				if err := repo.Add(cmd.Context(), r); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d records into %s\n", len(records), cfg.Data.SQLitePath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file, defaults to data.sqlite_path")
	cmd.Flags().BoolVar(&mock, "mock", false, "also insert the built-in sample records")
	return cmd
}
