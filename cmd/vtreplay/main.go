// Command vtreplay spawns a child process attached to a pty, feeds its
// output through the vtlex/engine/vtscreen pipeline to keep a live screen
// model, and mirrors the raw bytes to the real terminal so the child
// behaves exactly as it would run directly. On SIGWINCH it resizes both
// the pty and the screen model; on a screen dump signal (SIGUSR1) it
// prints the model's current line contents to stderr, which is the
// simplest way to prove the engine is tracking real output rather than
// just relaying it.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/weiplanet/vtengine/engine"
	"github.com/weiplanet/vtengine/internal/xlog"
	"github.com/weiplanet/vtengine/vtlex"
	"github.com/weiplanet/vtengine/vtscreen"
)

const (
	_COMMAND_NAME = "vtreplay"
)

var (
	BuildVersion = "0.1.0" // ready for ldflags

	usage = `Usage:
  ` + _COMMAND_NAME + ` [--verbose=N] -- command [args...]
Options:
  -h, --help         print this message
  -v, --version      print version information
      --verbose=N    verbose output mode (trace logging when N > 0)
`
)

func init() {
	xlog.Logger.AddSource(false)
}

func printVersion() {
	fmt.Printf("%s [build %s]\n", _COMMAND_NAME, BuildVersion)
}

func printUsage(hint string) {
	if hint != "" {
		fmt.Printf("Hints: %s\n%s", hint, usage)
		return
	}
	fmt.Print(usage)
}

type config struct {
	version bool
	verbose int
	command []string
}

func parseFlags(progname string, args []string) (*config, string, error) {
	flagSet := flag.NewFlagSet(progname, flag.ContinueOnError)
	var buf bytes.Buffer
	flagSet.SetOutput(&buf)

	var c config
	flagSet.BoolVar(&c.version, "version", false, "print version information")
	flagSet.BoolVar(&c.version, "v", false, "print version information")
	flagSet.IntVar(&c.verbose, "verbose", 0, "verbose output mode")

	if err := flagSet.Parse(args); err != nil {
		return nil, buf.String(), err
	}
	c.command = flagSet.Args()
	return &c, buf.String(), nil
}

func main() {
	conf, _, err := parseFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		printUsage("")
		return
	} else if err != nil {
		printUsage(err.Error())
		return
	}
	if conf.version {
		printVersion()
		return
	}
	if len(conf.command) == 0 {
		printUsage("a command to run is required, e.g. vtreplay -- bash")
		return
	}
	if conf.verbose > 0 {
		xlog.Logger.SetLevel(xlog.LevelTrace)
	}

	if err := run(conf.command); err != nil {
		log.Fatal(err)
	}
}

func run(command []string) error {
	cmd := exec.Command(command[0], command[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	rows, cols := 24, 80
	if ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ); err == nil {
		rows, cols = int(ws.Row), int(ws.Col)
		_ = pty.Setsize(ptmx, &pty.Winsize{Rows: ws.Row, Cols: ws.Col})
	}

	scr := vtscreen.New(rows, cols)
	eng, err := engine.NewEngine(scr)
	if err != nil {
		return err
	}
	eng.SetTerminalConnection(&passthrough{}, nil)
	machine := vtlex.NewMachine(eng, eng)

	stdinState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer term.Restore(int(os.Stdin.Fd()), stdinState)
	}

	sizes := make(chan os.Signal, 1)
	signal.Notify(sizes, syscall.SIGWINCH)
	dumps := make(chan os.Signal, 1)
	signal.Notify(dumps, syscall.SIGUSR1)

	group, ctx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		buf := make([]byte, 4096)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				if _, werr := ptmx.Write(buf[:n]); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}
		}
	})

	group.Go(func() error {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
				machine.FeedString(string(buf[:n]))
			}
			if err != nil {
				return err
			}
		}
	})

	group.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-sizes:
				if ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ); err == nil {
					scr.Resize(int(ws.Row), int(ws.Col))
					_ = pty.Setsize(ptmx, &pty.Winsize{Rows: ws.Row, Cols: ws.Col})
				}
			case <-dumps:
				dumpScreen(scr)
			}
		}
	})

	waitErr := cmd.Wait()
	_ = group.Wait()
	return waitErr
}

func dumpScreen(scr *vtscreen.Screen) {
	row, col := scr.CursorPos()
	fmt.Fprintf(os.Stderr, "--- screen dump (cursor %d,%d) ---\n", row, col)
	rows, cols := scr.Rows(), scr.Cols()
	var line strings.Builder
	for r := 0; r < rows; r++ {
		line.Reset()
		for c := 0; c < cols; c++ {
			if ch := scr.Cell(r, c).Rune; ch != 0 {
				line.WriteRune(ch)
			} else {
				line.WriteByte(' ')
			}
		}
		fmt.Fprintln(os.Stderr, strings.TrimRight(line.String(), " "))
	}
}

// passthrough is the TtyConnection run installs. It writes nothing: the raw
// bytes were already mirrored to stdout by the copy loop above. It is
// installed with a nil flush function, so the Engine's fallthrough never
// runs and a failed action still reports false to the lexer, which ignores
// the result.
type passthrough struct{}

func (passthrough) WriteTerminal(text string) bool { return true }
