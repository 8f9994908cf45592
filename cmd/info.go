// cmd/info.go

package cmd

import (
	"fmt"

	"github.com/certvault/certvault/pkg/cvcli"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/certvault/certvault/pkg/installer"
	"github.com/certvault/certvault/pkg/vault"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the installer and its target store",
	RunE: cvcli.Wrap(func(rc *cvio.RuntimeContext, cmd *cobra.Command, args []string) error {
		opts := vault.OptionsFromViper(viper.GetViper())
		inst := installer.New(nil, opts.Address, opts.Mount, opts.BasePath)
		fmt.Println(inst.MoreInfo())
		return nil
	}),
}
