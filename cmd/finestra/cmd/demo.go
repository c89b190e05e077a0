package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/finestra/pkg/app"
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/backend/headless"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
	"github.com/go-drift/finestra/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the demo applications with scripted input",
		Long: `Run the counter and checkbox demo applications on the headless
backend. Clicks are simulated and the resulting window contents printed.

Scenarios:
  counter     Click a button N times, then choose Edit > Reset
  checkbox    Toggle a checkbox N times and follow its bound state
  all         Run every scenario (default)

Flags:
  --clicks N        Number of simulated clicks (default 5)
  --backend NAME    Backend to run on (default headless)
  --dump            Print each window as JSON when the scenario ends`,
		Usage: "finestra demo [counter|checkbox|all] [--clicks N] [--backend NAME] [--dump]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	scenario string
	clicks   int
	backend  backend.Kind
	dump     bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{scenario: "all", clicks: 5, backend: backend.Headless}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--clicks":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--clicks requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return opts, fmt.Errorf("invalid click count %q", args[i+1])
			}
			opts.clicks = n
			i++
		case "--backend":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--backend requires a name")
			}
			kind, err := backend.ParseKind(args[i+1])
			if err != nil {
				return opts, err
			}
			opts.backend = kind
			i++
		case "--dump":
			opts.dump = true
		case "counter", "checkbox", "all":
			opts.scenario = args[i]
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}

	if opts.scenario == "counter" || opts.scenario == "all" {
		if err := runCounterDemo(opts); err != nil {
			return err
		}
	}
	if opts.scenario == "checkbox" || opts.scenario == "all" {
		if err := runCheckboxDemo(opts); err != nil {
			return err
		}
	}
	return nil
}

// --- counter ---

type counterState struct {
	clicks int
	label  *core.State[string]
}

func (s *counterState) show() {
	s.label.Set(fmt.Sprintf("Clicked: %d", s.clicks))
}

var resetItem = resources.Titled("Reset")

type counterDelegate struct {
	app.DelegateBase[counterState]
}

func (counterDelegate) DidLaunch(s *counterState) {
	s.label = core.NewState("Clicked: 0")
}

func (counterDelegate) ConfigureMainWindow(*counterState) *app.WindowConfiguration {
	return app.NewWindowConfiguration().
		WithTitle(core.Raw("Counter Demo")).
		WithSize(240, 120).
		WithMenu(resources.NewMenu("Edit").With(resetItem))
}

func (counterDelegate) MakeContentView(s *counterState, _ core.Window) widgets.View[counterState] {
	return widgets.VStack[counterState](
		widgets.LabelOf[counterState]("").WithText(core.Bind(s.label)),
		widgets.ButtonOf[counterState]("Click me").OnClick(func(s *counterState, _ core.Window) {
			s.clicks++
			s.show()
		}),
	)
}

func (counterDelegate) DidInvokeMenuAction(item resources.MenuItem, s *counterState, _ core.Window) {
	if item == resetItem {
		s.clicks = 0
		s.show()
	}
}

func runCounterDemo(opts demoOptions) error {
	w, err := app.New[counterState](counterDelegate{}, nil).WithBackend(opts.backend).Start()
	if err != nil {
		return err
	}
	defer w.Close()

	host, ok := w.Host().(*headless.Host)
	if !ok {
		return fmt.Errorf("scripted input needs the headless backend, not %s", w.Host().Kind())
	}
	button, ok := host.Views().Find(headless.WithTitle("Click me"))
	if !ok {
		return fmt.Errorf("counter demo: button not found")
	}
	label, ok := host.Views().Find(headless.OfKind(headless.KindLabel))
	if !ok {
		return fmt.Errorf("counter demo: label not found")
	}

	for range opts.clicks {
		button.Press()
	}
	host.Flush()

	fmt.Fprintf(stdout, "counter demo (%s)\n", host.Kind())
	fmt.Fprintf(stdout, "  window:  %s\n", host.Title())
	fmt.Fprintf(stdout, "  clicked: %s\n", label.Text())

	host.InvokeMenu(resetItem)
	host.Flush()
	fmt.Fprintf(stdout, "  after Edit > Reset: %s\n", label.Text())
	return dumpWindow(opts, host)
}

// --- checkbox ---

type checkboxState struct {
	enabled *core.State[bool]
	status  *core.State[string]
	seen    []bool
}

type checkboxDelegate struct {
	app.DelegateBase[checkboxState]
}

func (checkboxDelegate) DidLaunch(s *checkboxState) {
	s.enabled = core.NewState(false)
	s.status = core.NewState("Checkbox is OFF")
}

func (checkboxDelegate) ConfigureMainWindow(*checkboxState) *app.WindowConfiguration {
	return app.NewWindowConfiguration().WithTitle(core.Raw("Checkbox Demo"))
}

func (checkboxDelegate) MakeContentView(s *checkboxState, _ core.Window) widgets.View[checkboxState] {
	return widgets.VStack[checkboxState](
		widgets.CheckboxOf[checkboxState]("Enable").
			WithChecked(s.enabled).
			OnChecked(func(s *checkboxState, checked bool, _ core.Window) {
				s.seen = append(s.seen, checked)
				if checked {
					s.status.Set("Checkbox is ON")
				} else {
					s.status.Set("Checkbox is OFF")
				}
			}),
		widgets.LabelOf[checkboxState]("").WithText(core.Bind(s.status)),
	)
}

func runCheckboxDemo(opts demoOptions) error {
	w, err := app.New[checkboxState](checkboxDelegate{}, nil).WithBackend(opts.backend).Start()
	if err != nil {
		return err
	}
	defer w.Close()

	host, ok := w.Host().(*headless.Host)
	if !ok {
		return fmt.Errorf("scripted input needs the headless backend, not %s", w.Host().Kind())
	}
	box, ok := host.Views().Find(headless.OfKind(headless.KindCheckbox))
	if !ok {
		return fmt.Errorf("checkbox demo: checkbox not found")
	}
	label, ok := host.Views().Find(headless.OfKind(headless.KindLabel))
	if !ok {
		return fmt.Errorf("checkbox demo: label not found")
	}

	for range opts.clicks {
		box.Toggle()
	}
	host.Flush()

	var cell bool
	var seen []string
	w.State().Lock(func(s *checkboxState) {
		cell = s.enabled.Get()
		for _, b := range s.seen {
			seen = append(seen, strconv.FormatBool(b))
		}
	})

	fmt.Fprintf(stdout, "checkbox demo (%s)\n", host.Kind())
	fmt.Fprintf(stdout, "  toggled: %d time(s)\n", opts.clicks)
	fmt.Fprintf(stdout, "  cell:    %t\n", cell)
	fmt.Fprintf(stdout, "  control: %t\n", box.Checked())
	fmt.Fprintf(stdout, "  handler: %s\n", strings.Join(seen, ", "))
	fmt.Fprintf(stdout, "  status:  %s\n", label.Text())
	return dumpWindow(opts, host)
}

func dumpWindow(opts demoOptions, host *headless.Host) error {
	if !opts.dump {
		return nil
	}
	data, err := json.MarshalIndent(host.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\n", data)
	return nil
}
