// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/account"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a backend account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, account.NewClient(appConfig().Account).Register)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials against the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, account.NewClient(appConfig().Account).Login)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().String("username", "", "account username (falls back to .secrets/account-username)")
		cmd.Flags().String("password", "", "account password (falls back to .secrets/account-password)")
		rootCmd.AddCommand(cmd)
	}
}

func runAuth(cmd *cobra.Command, call func(ctx context.Context, username, password string) (account.Result, error)) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	username = loadedSecrets.Value("account-username", username)
	password = loadedSecrets.Value("account-password", password)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required; pass flags or add .secrets/ files")
	}

	result, err := call(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, result.Message)
	if !result.Success {
		return fmt.Errorf("request rejected by the backend")
	}
	return nil
}
