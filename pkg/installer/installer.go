// pkg/installer/installer.go

package installer

import "github.com/certvault/certvault/pkg/cvio"

// Installer is the capability set the certificate issuance engine drives.
// Only Prepare and Deploy carry logic in this system; the remaining
// lifecycle hooks exist to satisfy the host contract and are provided by
// NoopLifecycle.
type Installer interface {
	Prepare(rc *cvio.RuntimeContext) error
	MoreInfo() string
	GetAllNames() []string
	Deploy(rc *cvio.RuntimeContext, domain, certPath, keyPath, chainPath, fullchainPath string) error
	RenewDeploy(rc *cvio.RuntimeContext, lineage Lineage) error

	Enhance(rc *cvio.RuntimeContext, domain, enhancement string, options interface{}) error
	SupportedEnhancements() []string
	GetAllCertsKeys() [][]string
	Save(title string, temporary bool) error
	RollbackCheckpoints(rollback int) error
	RecoveryRoutine() error
	ViewConfigChanges() error
	ConfigTest() error
	Restart() error
}

// NoopLifecycle satisfies the lifecycle hooks that carry no logic in this
// system. Certificate deployment needs no local checkpoints, rollback or
// service restarts; the secret store versions secrets itself.
type NoopLifecycle struct{}

func (NoopLifecycle) Enhance(*cvio.RuntimeContext, string, string, interface{}) error { return nil }
func (NoopLifecycle) SupportedEnhancements() []string                                 { return []string{} }
func (NoopLifecycle) GetAllCertsKeys() [][]string                                     { return nil }
func (NoopLifecycle) Save(string, bool) error                                         { return nil }
func (NoopLifecycle) RollbackCheckpoints(int) error                                   { return nil }
func (NoopLifecycle) RecoveryRoutine() error                                          { return nil }
func (NoopLifecycle) ViewConfigChanges() error                                        { return nil }
func (NoopLifecycle) ConfigTest() error                                               { return nil }
func (NoopLifecycle) Restart() error                                                  { return nil }
