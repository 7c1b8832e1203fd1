package filesystem

import (
	"fmt"
	"os"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Factory creates filesystem connectors rooted at an input directory.
type Factory struct {
	extensions []string
}

// NewFactory creates a connector factory. The extensions filter is
// shared by every connector it creates.
func NewFactory(extensions ...string) *Factory {
	return &Factory{extensions: extensions}
}

// Create returns a connector for inputDir. The directory must exist so
// a typo'd path fails up front instead of reading as an empty input.
func (f *Factory) Create(inputDir string) (driven.Connector, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", inputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", inputDir)
	}
	return New(inputDir, f.extensions...), nil
}
