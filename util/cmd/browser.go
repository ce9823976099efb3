package cmd

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
)

// Browser opens the given URL with the platform default handler
func Browser(url string) error {
	var (
		output bytes.Buffer
		cmd    *exec.Cmd
	)
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		if output.Len() > 0 {
			return errors.New(output.String())
		}
		return err
	}
	return nil
}
