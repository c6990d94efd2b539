package scaffold

import (
	"fmt"
	"os"
)

// SigningConfig holds the four values the build script reads from
// signing.properties.
type SigningConfig struct {
	StoreFile     string
	StorePassword string
	KeyAlias      string
	KeyPassword   string
}

// WriteSigningProperties writes the signing configuration in the fixed
// key=value format the gradle build consumes. The format must not change.
func WriteSigningProperties(path string, sc SigningConfig) error {
	content := fmt.Sprintf("storeFile=%s\nstorePassword=%s\nkeyAlias=%s\nkeyPassword=%s\n",
		sc.StoreFile, sc.StorePassword, sc.KeyAlias, sc.KeyPassword)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write signing properties: %w", err)
	}
	return nil
}
