package sysinfo

import (
	"context"
	"os/exec"
	"strings"
)

// Runner executes external query tools. Run returns the trimmed standard
// output and false when the command is missing, fails or prints nothing.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, bool)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner. No timeout is applied beyond ctx.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, bool) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		debugf("%s %s: %v", name, strings.Join(args, " "), err)
		return "", false
	}
	s := strings.TrimSpace(string(out))
	return s, s != ""
}
