//go:build windows

package execute

import (
	"os"
	"os/exec"
	"syscall"
)

func shellCommand(line string) *exec.Cmd {
	cmd := exec.Command("cmd")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd /S /C "` + line + `"`}
	return cmd
}

func killProcessGroup(process *os.Process) error {
	return process.Kill()
}

func signalName(sig syscall.Signal) string {
	return sig.String()
}
