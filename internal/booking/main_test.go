package booking

import (
	"os"
	"testing"

	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}
