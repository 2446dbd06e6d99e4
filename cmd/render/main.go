package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/a2ui-runtime/builder"
	"github.com/wippyai/a2ui-runtime/component"
	"github.com/wippyai/a2ui-runtime/surface"
	"github.com/wippyai/a2ui-runtime/transport"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to a JSON array of protocol messages")
		surfaceID   = flag.String("surface", "", "Surface to render (defaults to the only one)")
		serve       = flag.Bool("serve", false, "Accept one producer connection instead of reading a file")
		listenAddr  = flag.String("listen", "", "Producer listen address (defaults to listen.addr from config)")
		demo        = flag.Bool("demo", false, "Render a built-in demo form")
		list        = flag.Bool("list", false, "List surfaces and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" && !*demo && !*serve && *listenAddr == "" {
		fmt.Fprintln(os.Stderr, "Usage: render -file <messages.json> [-surface id] [-list]")
		fmt.Fprintln(os.Stderr, "       render -file <messages.json> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       render -serve [-listen addr]  (apply events from a producer connection)")
		fmt.Fprintln(os.Stderr, "       render -demo [-i]")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	surface.SetLogger(logger)

	proc := surface.NewProcessor()

	switch {
	case *serve || *listenAddr != "":
		addr := *listenAddr
		if addr == "" {
			addr = cfg.Listen.Addr
		}
		if err := serveOnce(proc, addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *demo:
		if err := applyDemo(proc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := applyFile(proc, *file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	id, err := pickSurface(proc, *surfaceID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg, proc, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dump(proc, id, *list, cfg.UI.MaxDepth)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func applyFile(proc *surface.Processor, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	msgs, err := surface.DecodeMessages(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	proc.Apply(msgs)
	return nil
}

func applyDemo(proc *surface.Processor) error {
	bundle, err := builder.Form("demo_form", "Demo Form", []builder.FormField{
		{ID: "name", Label: "Name"},
		{ID: "email", Label: "Email", Type: "email"},
	}, "submitForm")
	if err != nil {
		return err
	}
	proc.Apply(bundle.Messages)
	return nil
}

// serveOnce accepts a single producer connection and applies its events
// until it disconnects.
func serveOnce(proc *surface.Processor, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Listening on %s, waiting for a producer...\n", ln.Addr())
	stream, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}

	conn := transport.Serve(context.Background(), stream, proc)
	conn.Wait()
	fmt.Printf("Producer disconnected.\n")
	return nil
}

func pickSurface(proc *surface.Processor, want string) (string, error) {
	ids := proc.SurfaceIDs()
	if len(ids) == 0 {
		return "", fmt.Errorf("no surfaces in input")
	}
	if want != "" {
		if _, ok := proc.Surface(want); !ok {
			return "", fmt.Errorf("unknown surface %q (have: %s)", want, strings.Join(ids, ", "))
		}
		return want, nil
	}
	sort.Strings(ids)
	return ids[0], nil
}

func dump(proc *surface.Processor, id string, listOnly bool, maxDepth int) {
	if listOnly {
		ids := proc.SurfaceIDs()
		sort.Strings(ids)
		fmt.Printf("Surfaces: %d\n", len(ids))
		for _, sid := range ids {
			s, _ := proc.Surface(sid)
			fmt.Printf("  %s  state=%s root=%s components=%d\n",
				sid, s.State(), s.RootID(), s.ComponentCount())
		}
		return
	}

	s, _ := proc.Surface(id)
	fmt.Printf("Surface: %s\n", s.ID())
	fmt.Printf("State: %s\n", s.State())
	fmt.Printf("Root: %s\n", s.RootID())
	fmt.Printf("Components: %d\n\n", s.ComponentCount())
	dumpNode(s, s.RootID(), 0, maxDepth)
}

func dumpNode(s *surface.Surface, id string, depth, maxDepth int) {
	indent := strings.Repeat("  ", depth)
	if depth >= maxDepth {
		fmt.Printf("%s... (depth limit)\n", indent)
		return
	}

	inst, ok := s.Component(id)
	if !ok {
		fmt.Printf("%s%s (missing)\n", indent, id)
		return
	}

	fmt.Printf("%s%s [%s]%s\n", indent, inst.Kind(), inst.ID, propSummary(s, inst))
	for _, child := range component.ChildIDs(inst) {
		dumpNode(s, child, depth+1, maxDepth)
	}
}

// propSummary renders the display-relevant resolved props inline.
func propSummary(s *surface.Surface, inst *component.Instance) string {
	props := s.RenderProps(inst)
	var parts []string
	for _, key := range []string{"text", "label", "value", "url"} {
		if v, ok := props[key]; ok && v != nil {
			parts = append(parts, fmt.Sprintf("%s=%q", key, component.TextValue(v)))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
