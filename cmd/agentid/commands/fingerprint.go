package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/crypto"
	"agentid/internal/principal"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the key fingerprint and principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			der := signer.Public().DER()
			fmt.Printf("Fingerprint: %s\nPrincipal:   %s\n",
				crypto.Fingerprint(der), principal.SelfAuthenticating(der))
			return nil
		},
	}
}
