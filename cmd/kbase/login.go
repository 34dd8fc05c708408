// Login, logout, and register commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/types"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and start a session",
	Long: `Login validates the supplied credentials against the user store and
records the session.

Example:
  kbase login --username admin --password 123`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the active session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clearSession(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var (
	regName     string
	regUsername string
	regPassword string
	regRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new user account",
	Long: `Register creates a user account through the same gate the login
screen uses. Usernames must be unique.

Example:
  kbase register --name "Jane Smith" --username jane --password secret`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "account username (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&regName, "name", "", "display name (required)")
	registerCmd.Flags().StringVar(&regUsername, "username", "", "unique username (required)")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "password (required)")
	registerCmd.Flags().StringVar(&regRole, "role", types.RoleUser, "role: ADMIN or USER")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	user, err := db.Auth().Authenticate(loginUsername, loginPassword)
	if err != nil {
		return err
	}
	if err := saveSession(user.ID); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s (%s)\n", user.Name, user.Role)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	_, err = db.Auth().Register(types.User{
		Name:     regName,
		Username: regUsername,
		Password: regPassword,
		Role:     regRole,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Registration successful, please login")
	return nil
}
