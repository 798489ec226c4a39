//go:build linux

package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sys/unix"

	"github.com/reglet-dev/swiprint/format"
)

func probeCmd() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Print the terminal attributes of standard input",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e := format.NewWriterEmitter(cmd.Root().Writer)
			probeTermios(e, int(os.Stdin.Fd())) //nolint:gosec // G115: fds fit in int
			return e.Err()
		},
	}
}

// probeTermios prints the TCGETS result for fd, or the errno when fd is not
// a terminal.
func probeTermios(e format.Emitter, fd int) {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		var errno unix.Errno
		if !errors.As(err, &errno) {
			format.Printf(e, "rc=%d, error=%s\n", -1, err.Error())
			return
		}
		format.Printf(e, "rc=%d, errno=%d (%s)\n", -1, int(errno), errno.Error())
		return
	}
	format.Printf(e, "rc=%d, iflag=%x oflag=%x cflag=%x lflag=%x line=%d [%u..%u], %d %d\n",
		0, t.Iflag, t.Oflag, t.Cflag, t.Lflag, t.Line,
		t.Cc[0], t.Cc[len(t.Cc)-1],
		t.Ispeed, t.Ospeed)
}
