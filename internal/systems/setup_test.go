package systems

import (
	"os"
	"testing"

	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// openGrid builds an all-floor square grid with 16px tiles.
func openGrid(size int) *domain.TileGrid {
	data := make([][]int, size)
	for r := range data {
		data[r] = make([]int, size)
	}
	return domain.NewTileGrid(data, 16)
}
