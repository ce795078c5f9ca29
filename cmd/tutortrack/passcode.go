package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/tutortrack/internal/auth"
)

func newHashPasscodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passcode [passcode]",
		Short: "Print the bcrypt hash to use as auth.passcode_hash",
		Long:  "Hashes the passcode given as argument, or the first line of stdin when omitted.",
		Args:  cobra.MaximumNArgs(1),
		// Does not need a valid configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			var passcode string
			if len(args) == 1 {
				passcode = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read passcode: %w", err)
				}
				passcode = strings.TrimRight(line, "\r\n")
			}

			hash, err := auth.HashPasscode(passcode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
