package adapters

import (
	"os/exec"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/ports"
	"anonapi/internal/shared"
)

// LaunchOSAdapter opens a file with the platform's default application.
type LaunchOSAdapter struct{}

func NewLaunchOSAdapter() LaunchOSAdapter {
	return LaunchOSAdapter{}
}

func (a LaunchOSAdapter) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open " + path).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.LaunchPort = LaunchOSAdapter{}
