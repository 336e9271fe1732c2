package librequests

import (
	"fmt"

	"github.com/scobi84/librequests/internal/platform"
)

// buildUserAgent renders "<product>/<version> <name>/<release>" from
// the configured client identity and the platform provider. The same
// string is stamped on every method, GET included.
func buildUserAgent(product, version string, p platform.Provider) string {
	info := p.Info()
	return fmt.Sprintf("%s/%s %s/%s", product, version, info.Name, info.Release)
}
