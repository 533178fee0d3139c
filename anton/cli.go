package anton

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/retroenv/retrogolib/log"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/disasm"
	"github.com/vxpm/anton/internal/memdump"
	"github.com/vxpm/anton/internal/rpc"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/view"
)

type cliArgs struct {
	File   string `short:"f" type:"existingfile" help:"Binary image to inspect."`
	Base   string `default:"0" help:"Address the image is mapped at (hex)."`
	Socket string `short:"s" help:"Unix socket of a live monitor target."`
	Start  string `default:"0" help:"Initial pointer address (hex)."`
	Debug  bool   `help:"Enable debug logging."`

	View   cliEmptyCmd  `cmd:"" default:"1" help:"Run the interactive viewer."`
	Dump   cliDumpCmd   `cmd:"" help:"Hexdump a range to stdout."`
	Disasm cliDisasmCmd `cmd:"" help:"Print an instruction listing to stdout."`
	Visual cliVisualCmd `cmd:"" help:"Open the graphical memory map."`
	Ping   cliEmptyCmd  `cmd:"" help:"Ping the monitor socket."`
}

type cliEmptyCmd struct{}

type cliDumpCmd struct {
	Length  string `arg:"" optional:"" help:"Length in bytes (hex, default 100)."`
	Columns int    `short:"c" default:"16" help:"Bytes per line."`
}

type cliDisasmCmd struct {
	Count int `short:"n" default:"32" help:"Number of instruction slots to list."`
}

type cliVisualCmd struct {
	Width  int `default:"256" help:"Bytes per bitmap row."`
	Height int `default:"256" help:"Bitmap rows."`
	Scale  int `default:"3" help:"Window pixels per byte."`
}

func Main(argv []string) int {
	args, parsed, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 2
	}
	logger := newLogger(args.Debug)

	start, err := addrspace.Parse(args.Start)
	if err != nil {
		logger.Error("invalid start address", log.String("value", args.Start), log.Err(err))
		return 2
	}
	src, err := buildSource(args)
	if err != nil {
		logger.Error("cannot open source", log.Err(err))
		return 1
	}
	logger.Debug("source ready", log.String("source", source.Describe(src)))

	selected := parsed.Selected()
	command := "view"
	if selected != nil {
		command = selected.Path()
	}
	switch command {
	case "view":
		return cmdView(src, start)
	case "dump":
		return cmdDump(logger, src, start, args.Dump)
	case "disasm":
		return cmdDisasm(src, start, args.Disasm)
	case "visual":
		return cmdVisual(logger, src, start, args.Visual)
	case "ping":
		return cmdPing(logger, args.Socket)
	default:
		return 2
	}
}

func parseCLI(argv []string) (cliArgs, *kong.Context, error) {
	var args cliArgs
	parser, err := kong.New(
		&args,
		kong.Name("anton"),
		kong.Description("Scrollable memory and instruction viewer."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		}),
		kong.Help(colorizedHelpPrinter(kong.DefaultHelpPrinter)),
		kong.ShortHelp(colorizedHelpPrinter(kong.DefaultShortHelpPrinter)),
	)
	if err != nil {
		return args, nil, err
	}
	parsed, err := parser.Parse(argv)
	if err != nil {
		return args, nil, err
	}
	return args, parsed, nil
}

func newLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

// buildSource picks the byte source: a mapped file image, a live socket,
// or the built-in demo ramp when neither is given.
func buildSource(args cliArgs) (source.Provider, error) {
	if args.File != "" {
		base, err := addrspace.Parse(args.Base)
		if err != nil {
			return nil, err
		}
		return source.LoadFile(args.File, base)
	}
	if args.Socket != "" {
		return source.NewRemote(rpc.New(args.Socket)), nil
	}
	return source.Ramp{}, nil
}

func cmdView(src source.Provider, start addrspace.Addr) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := RunViewer(ctx, src, disasm.NewDecoder(src), start)
	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 1
	}
	return 0
}

func cmdDump(logger *log.Logger, src source.Provider, start addrspace.Addr, args cliDumpCmd) int {
	length := addrspace.Addr(0x100)
	if args.Length != "" {
		v, err := addrspace.Parse(args.Length)
		if err != nil {
			logger.Error("invalid length", log.String("value", args.Length), log.Err(err))
			return 2
		}
		length = v
	}
	buf := memdump.Read(src, start, int(length))
	for _, line := range memdump.Lines(start, buf, args.Columns) {
		fmt.Println(line)
	}
	return 0
}

func cmdDisasm(src source.Provider, start addrspace.Addr, args cliDisasmCmd) int {
	dec := disasm.NewDecoder(src)
	count := args.Count
	if count < 1 {
		count = 1
	}
	buf := make([]view.Instruction, count)
	dec.ReadInto(start, buf)
	vp := view.UnitViewport{Begin: start, UnitSize: dec.UnitSize(), Rows: count}
	for _, row := range view.BuildUnitGrid(vp, buf, addrspace.Max) {
		fmt.Printf("%s: %s\n", row.Label, row.Text)
	}
	return 0
}

func cmdVisual(logger *log.Logger, src source.Provider, start addrspace.Addr, args cliVisualCmd) int {
	if err := RunVisual(src, start, args.Width, args.Height, args.Scale); err != nil {
		logger.Error("visual preview failed", log.Err(err))
		return 1
	}
	return 0
}

func cmdPing(logger *log.Logger, socket string) int {
	if socket == "" {
		logger.Error("ping needs --socket")
		return 2
	}
	client := rpc.New(socket)
	defer client.Close()
	if err := client.Ping(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 1
	}
	fmt.Println("pong")
	return 0
}

func colorizedHelpPrinter(base kong.HelpPrinter) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		out := ctx.Stdout
		var buf bytes.Buffer
		ctx.Stdout = &buf
		err := base(options, ctx)
		ctx.Stdout = out
		if err != nil {
			return err
		}
		text := buf.String()
		if !cliColorEnabled() {
			_, werr := io.WriteString(out, text)
			return werr
		}
		_, werr := io.WriteString(out, colorizeHelpText(text))
		return werr
	}
}

func colorizeHelpText(text string) string {
	const (
		reset = "\x1b[0m"
		head  = "\x1b[1;36m"
		dim   = "\x1b[2m"
	)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "Usage:") ||
			trim == "Commands:" ||
			trim == "Arguments:" ||
			trim == "Flags:" {
			lines[i] = head + trim + reset
			continue
		}
		if strings.HasPrefix(trim, "Run \"") {
			lines[i] = dim + line + reset
		}
	}
	return strings.Join(lines, "\n")
}

func formatCliError(err error) string {
	if err == nil {
		return ""
	}
	badge := " ERR "
	if cliColorEnabled() {
		return "\x1b[41;97;1m" + badge + "\x1b[0m " + err.Error()
	}
	return "[ERR] " + err.Error()
}

func cliColorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ANTON_COLOR"))) {
	case "always":
		return true
	case "never":
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
