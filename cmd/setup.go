// cmd/setup.go

package cmd

import (
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/certvault/certvault/pkg/installer"
	"github.com/certvault/certvault/pkg/vault"
	"github.com/spf13/viper"
)

// newInstaller connects to the secret store, authenticates, and runs the
// readiness gate exactly once, before any certificate file is touched.
func newInstaller(rc *cvio.RuntimeContext) (*installer.VaultInstaller, error) {
	opts := vault.OptionsFromViper(viper.GetViper())

	client, err := vault.Connect(rc, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Authenticate(rc); err != nil {
		return nil, err
	}

	inst := installer.New(client, opts.Address, opts.Mount, opts.BasePath)
	if err := inst.Prepare(rc); err != nil {
		return nil, err
	}
	return inst, nil
}
