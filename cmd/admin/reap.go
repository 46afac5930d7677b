package main

import (
	"context"

	"github.com/spf13/cobra"

	"planner_backend/internals/features/planner/integrity/scheduler"
)

func (cli *commandLine) reapCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "reap",
		Short: "Remove relationship rows that point at missing entities and count ownerless rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			rep, err := scheduler.RunOrphanReaper(ctx, cli.db, dryRun)
			if err != nil {
				return err
			}
			cli.printf("dry_run=%v slots=%d memberships=%d attendance=%d homework=%d\n",
				dryRun, rep.Slots, rep.Memberships, rep.Attendance, rep.Homework)
			cli.printf("ownerless marks=%d homework=%d events=%d classes=%d\n",
				rep.OwnerlessMarks, rep.OwnerlessHomework, rep.OwnerlessEvents, rep.OwnerlessClasses)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only count orphans")
	return cmd
}
