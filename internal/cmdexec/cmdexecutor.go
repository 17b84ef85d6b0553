package cmdexec

import (
	"io"
	"os"
	"os/exec"
)

// CommandExecutor runs external build tools (pip, poetry, uv, docker, zip).
// The interface exists so builders can be tested without spawning real
// processes.
type CommandExecutor interface {
	SetStdin(stdin io.Reader)
	SetStdout(stdout io.Writer)
	SetStderr(stderr io.Writer)
	SetDir(dir string)
	SetEnv(key, value string)
	Run(name string, args ...string) (int, error)
}

type OSCommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	dir    string
	env    []string
}

var _ CommandExecutor = &OSCommandExecutor{}

func (c *OSCommandExecutor) SetStdin(stdin io.Reader) {
	c.Stdin = stdin
}

func (c *OSCommandExecutor) SetStdout(stdout io.Writer) {
	c.Stdout = stdout
}

func (c *OSCommandExecutor) SetStderr(stderr io.Writer) {
	c.Stderr = stderr
}

func (c *OSCommandExecutor) SetDir(dir string) {
	c.dir = dir
}

// SetEnv appends a variable to the child process environment on top of the
// parent environment. Build tools read private repository credentials this
// way instead of taking them on the command line.
func (c *OSCommandExecutor) SetEnv(key, value string) {
	c.env = append(c.env, key+"="+value)
}

func (c *OSCommandExecutor) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)

	cmd.Dir = c.dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if len(c.env) > 0 {
		cmd.Env = append(os.Environ(), c.env...)
	}

	err := cmd.Run()

	return cmd.ProcessState.ExitCode(), err
}
