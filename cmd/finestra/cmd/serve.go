package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/finestra/pkg/app"
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/backend/headless"
	"github.com/go-drift/finestra/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve the counter demo to remote shims",
		Long: `Run the counter demo on the headless backend and accept events from
out-of-process shims until interrupted.

Endpoints:
  /events       Websocket; each message is one encoded event
  /view-tree    The window and its views as JSON
  /health       Liveness check

Flags:
  --addr ADDR       Listen address (default 127.0.0.1:9753)
  --codec NAME      Event encoding: json (default) or msgpack`,
		Usage: "finestra serve [--addr ADDR] [--codec json|msgpack]",
		Run:   runServe,
	})
}

const defaultServeAddr = "127.0.0.1:9753"

type serveOptions struct {
	addr  string
	codec platform.MessageCodec
}

func parseServeArgs(args []string) (serveOptions, error) {
	opts := serveOptions{addr: defaultServeAddr, codec: platform.JsonCodec{}}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--addr", "--codec":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", args[i])
			}
			value := args[i+1]
			i++
			if args[i-1] == "--addr" {
				opts.addr = value
				continue
			}
			switch value {
			case "json":
				opts.codec = platform.JsonCodec{}
			case "msgpack":
				opts.codec = platform.MsgpackCodec{}
			default:
				return opts, fmt.Errorf("unknown codec %q", value)
			}
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return opts, nil
}

func runServe(args []string) error {
	opts, err := parseServeArgs(args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	return serveCounter(ctx, ln, opts.codec)
}

// serveCounter runs the counter demo, serving shims on ln until ctx ends.
func serveCounter(ctx context.Context, ln net.Listener, codec platform.MessageCodec) error {
	w, err := app.New[counterState](counterDelegate{}, nil).WithBackend(backend.Headless).Start()
	if err != nil {
		ln.Close()
		return err
	}
	defer w.Close()

	host := w.Host().(*headless.Host)
	bridge := w.Bridge(codec)
	defer bridge.Close()

	srv := &http.Server{Handler: shimHandler(host, bridge)}
	defer srv.Close()
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(stdout, "serve: %v\n", err)
		}
	}()

	fmt.Fprintf(stdout, "serving %q on http://%s (events at /events)\n", host.Title(), ln.Addr())
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func shimHandler(host *headless.Host, bridge *platform.Bridge) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/events", platform.NewSocketServer(bridge))
	mux.Handle("/", host.Inspector())
	return mux
}
