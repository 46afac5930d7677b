package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	codeRepo "planner_backend/internals/features/users/registration_codes/repository"
	userModel "planner_backend/internals/features/users/user/model"
)

func (cli *commandLine) codeCmd() *cobra.Command {
	var (
		permission string
		code       string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a single-use registration code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := userModel.ParsePermission(permission)
			if err != nil {
				return err
			}
			if code == "" {
				code = uuid.NewString()
			}
			m, err := codeRepo.CreateCode(cli.db, code, perm)
			if err != nil {
				return err
			}
			cli.printf("%s\t%s\n", m.RegistrationCode, m.RegistrationCodePermission)
			return nil
		},
	}
	create.Flags().StringVar(&permission, "permission", "teacher", "permission granted by the code (student|teacher)")
	create.Flags().StringVar(&code, "code", "", "code value (random when empty)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List unused registration codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := codeRepo.ListCodes(cli.db)
			if err != nil {
				return err
			}
			for _, c := range codes {
				cli.printf("%s\t%s\n", c.RegistrationCode, c.RegistrationCodePermission)
			}
			return nil
		},
	}

	return groupCmd("code", "Manage registration codes", create, list)
}
