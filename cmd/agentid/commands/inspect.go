package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"agentid/internal/crypto"
	"agentid/internal/delegation"
	"agentid/internal/domain"
	"agentid/internal/principal"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [chain.json]",
		Short: "Validate and summarize a delegation chain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var chain *delegation.Chain
			if len(args) == 1 {
				b, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				chain, err = delegation.FromJSON(b)
				if err != nil {
					return err
				}
			} else {
				c, ok, err := appCtx.Chains.LoadChain()
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no stored chain; pass a chain file")
				}
				chain = c
			}

			root := chain.RootPublicKey()
			fmt.Printf("Root key:  %s\n", crypto.Fingerprint(root))
			fmt.Printf("Principal: %s\n", principal.SelfAuthenticating(root))
			for i, sd := range chain.Delegations() {
				fmt.Printf("  [%d] delegate %s expires %s\n",
					i, crypto.Fingerprint(sd.Delegation.PubKey), formatExpiration(sd.Delegation))
				for _, t := range sd.Delegation.Targets {
					fmt.Printf("      target %s\n", t)
				}
			}
			return nil
		},
	}
}

// formatExpiration renders the nanosecond expiration as RFC 3339 when it fits
// a time.Time, and as raw nanoseconds otherwise.
func formatExpiration(d domain.Delegation) string {
	if d.Expiration.IsInt64() {
		return time.Unix(0, d.Expiration.Int64()).UTC().Format(time.RFC3339)
	}
	return d.Expiration.String() + "ns"
}
