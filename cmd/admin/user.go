package main

import (
	"github.com/spf13/cobra"

	authService "planner_backend/internals/features/users/auth/service"
	lifecycle "planner_backend/internals/features/users/lifecycle/service"
	userRepo "planner_backend/internals/features/users/user/repository"
)

func (cli *commandLine) userCmd() *cobra.Command {
	resetPassword := &cobra.Command{
		Use:   "reset-password USERNAME",
		Short: "Set a new password (prompted) and end the user's session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userRepo.GetUserByUsername(cli.db, args[0])
			if err != nil {
				return err
			}
			pwd, err := cli.promptPassword()
			if err != nil {
				return err
			}
			if err := authService.SetPassword(cli.db, u.UserID, pwd); err != nil {
				return err
			}
			if err := authService.Logout(cli.db, u.UserID); err != nil {
				return err
			}
			cli.printf("password updated for %s\n", u.UserName)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset USERNAME",
		Short: "Remove all planner data owned by the user, keep the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userRepo.GetUserByUsername(cli.db, args[0])
			if err != nil {
				return err
			}
			rep, err := lifecycle.ResetUserData(cli.db, u.UserID)
			if err != nil {
				return err
			}
			cli.printf("reset %s: %+v\n", u.UserName, *rep)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete the account and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := userRepo.GetUserByUsername(cli.db, args[0])
			if err != nil {
				return err
			}
			rep, err := lifecycle.DeleteUserAccount(cli.db, u.UserID)
			if err != nil {
				return err
			}
			cli.printf("deleted %s: %+v\n", u.UserName, *rep)
			return nil
		},
	}

	return groupCmd("user", "Manage user accounts", resetPassword, reset, del)
}
