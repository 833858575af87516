package cli

import (
	"go.uber.org/zap"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

// loadRecord returns the record in path, or the built-in record when path
// is empty.
func loadRecord(path string) (blueprint.Options, error) {
	if path == "" {
		logger.Debug("using built-in record")
		return blueprint.Default(), nil
	}
	logger.Debug("loading record", zap.String("file", path))
	return blueprint.LoadFile(path)
}
