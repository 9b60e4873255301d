package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"agentid/internal/app"
	"agentid/internal/services/keyring"
	"agentid/internal/store"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "agentid",
		Short: "Delegated identity keys and chain inspection",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".agentid")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			keys := keyring.New(store.NewKeyFileStore(home))
			chains := store.NewChainFileStore(home)
			appCtx = app.New(keys, chains)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.agentid)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), fingerprintCmd(), pubkeyCmd(), inspectCmd())
	return root.Execute()
}
