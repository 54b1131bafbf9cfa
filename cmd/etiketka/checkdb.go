package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"etiketka/catalog"
)

func newCheckDBCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Verify the shop database connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			svc, err := catalog.Open(cfg.DSN(), log)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database connection ok")
			return nil
		},
	}
}
