package console

import (
	"context"
	"os"
	"os/exec"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/mdsohelmia/blaze/pkg/downloader"
)

// clearCommand returns the command that clears the screen on goos.
func clearCommand(goos string) ([]string, error) {
	switch goos {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return []string{"clear"}, nil
	case "windows":
		return []string{"cmd", "/C", "cls"}, nil
	default:
		return nil, downloader.NewProgramError("OS not supported by CLI")
	}
}

// ClearTerminal clears the screen of the terminal the process runs in.
func ClearTerminal(ctx context.Context) error {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return downloader.NewProgramError("Error detecting OS: %w", err)
	}
	args, err := clearCommand(info.OS)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		return downloader.NewProgramError("Error running `%s`: %w", args[0], err)
	}
	return nil
}
