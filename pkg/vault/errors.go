// pkg/vault/errors.go

package vault

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/hashicorp/vault/api"
)

// classifyStoreError maps a Vault API error onto the failure taxonomy so
// the issuance engine can tell authentication, authorization, store-side
// validation and connectivity problems apart.
func classifyStoreError(err error, secretPath string) error {
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusUnauthorized:
			return cverr.Wrap(cverr.KindAuthentication, err, "secret store rejected the session token")
		case http.StatusForbidden:
			return cverr.Wrap(cverr.KindAuthorization, err,
				fmt.Sprintf("token lacks write capability on %q", secretPath))
		case http.StatusBadRequest, http.StatusNotFound, http.StatusUnsupportedMediaType:
			return cverr.Wrap(cverr.KindStoreWrite, err,
				fmt.Sprintf("store rejected the write at %q (is the mount a KV v2 engine?)", secretPath))
		default:
			return cverr.Wrap(cverr.KindStoreWrite, err,
				fmt.Sprintf("store write at %q failed", secretPath))
		}
	}
	return cverr.Wrap(cverr.KindConnectivity, err, "secret store unreachable")
}
