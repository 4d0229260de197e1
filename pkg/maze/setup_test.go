package maze

import (
	"os"
	"testing"

	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
