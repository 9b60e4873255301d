package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/principal"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a signing key and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			signer, fp, err := appCtx.Keys.Generate(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Key created.\nFingerprint: %s\nPrincipal:   %s\n",
				fp, principal.SelfAuthenticating(signer.Public().DER()))
			return nil
		},
	}
}
