// User management commands: list, add, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		if _, err := requireAdmin(db); err != nil {
			return err
		}

		users := db.Users().GetAll()
		if flagJSON {
			// Passwords stay out of listings even in JSON mode.
			type listed struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				Username string `json:"username"`
				Role     string `json:"role"`
			}
			out := make([]listed, 0, len(users))
			for _, u := range users {
				out = append(out, listed{u.ID, u.Name, u.Username, u.Role})
			}
			return printJSON(out)
		}
		for _, u := range users {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s  %-16s  %s\n", u.ID, u.Name, u.Username, u.Role)
		}
		return nil
	},
}

var (
	userName     string
	userUsername string
	userPassword string
	userRole     string
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		if _, err := requireAdmin(db); err != nil {
			return err
		}

		updated, err := db.Users().Add(types.User{
			Name:     userName,
			Username: userUsername,
			Password: userPassword,
			Role:     userRole,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user: %s\n", updated[len(updated)-1].ID)
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
	Long: `Update edits a user account. Users may edit themselves; editing
anyone else requires the administrator role. An empty --password keeps
the existing credential.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		actor, err := currentUser(db)
		if err != nil {
			return err
		}

		var existing *types.User
		for _, u := range db.Users().GetAll() {
			if u.ID == args[0] {
				u := u
				existing = &u
				break
			}
		}
		if existing == nil {
			return fmt.Errorf("unknown user: %s", args[0])
		}

		updated := *existing
		updated.Password = ""
		if cmd.Flags().Changed("name") {
			updated.Name = userName
		}
		if cmd.Flags().Changed("username") {
			updated.Username = userUsername
		}
		if cmd.Flags().Changed("password") {
			updated.Password = userPassword
		}
		if cmd.Flags().Changed("role") {
			updated.Role = userRole
		}

		if _, err := db.Users().Update(actor, updated); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Updated")
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Long: `Delete removes a user account. Administrator only, and the active
session's own account can never be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		actor, err := requireAdmin(db)
		if err != nil {
			return err
		}

		updated, err := db.Users().Delete(actor, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s (%d remaining)\n", args[0], len(updated))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{userAddCmd, userUpdateCmd} {
		c.Flags().StringVar(&userName, "name", "", "display name")
		c.Flags().StringVar(&userUsername, "username", "", "unique username")
		c.Flags().StringVar(&userPassword, "password", "", "password")
		c.Flags().StringVar(&userRole, "role", types.RoleUser, "role: ADMIN or USER")
	}
	_ = userAddCmd.MarkFlagRequired("name")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
}
