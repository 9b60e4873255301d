package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the DER-encoded public key as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(signer.Public().DER()))
			return nil
		},
	}
}
