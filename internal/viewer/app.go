package viewer

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/rowkit/internal/event"
	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/Iron-Ham/rowkit/internal/manager"
	"github.com/Iron-Ham/rowkit/internal/render"
	"github.com/Iron-Ham/rowkit/internal/tabledef"
)

// Config configures an App.
type Config struct {
	// Source is the definition file the table was built from. When Watch is
	// set, the table is rebuilt each time the file changes.
	Source string
	// Title is shown above the table.
	Title     string
	Options   render.Options
	Watch     bool
	AltScreen bool
	Logger    *logging.Logger
}

// App wraps the bubbletea program
type App struct {
	program *tea.Program
	model   Model
	config  Config
	logger  *logging.Logger
}

// New creates a viewer over m. The manager's bus is reused for reloaded
// tables so subscribers survive a reload.
func New(m *manager.Manager, cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(m, cfg.Title, cfg.Options, logger),
		config: cfg,
		logger: logger,
	}
}

// Run starts the viewer and blocks until the user quits.
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if a.config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	done := make(chan struct{})
	defer close(done)
	program := a.program
	go forwardSignal(sigChan, done, func() { program.Send(tea.Quit()) })

	if a.config.Watch && a.config.Source != "" {
		w, err := NewWatcher(a.config.Source, func() {
			a.program.Send(a.reload())
		}, a.logger)
		if err != nil {
			a.logger.Warn("watching definition failed", "error", err.Error())
		} else {
			w.Start()
			defer w.Stop()
		}
	}

	_, err := a.program.Run()
	return err
}

// forwardSignal calls quit on the first signal. It returns without calling
// quit once done is closed.
func forwardSignal(sigs <-chan os.Signal, done <-chan struct{}, quit func()) {
	select {
	case <-sigs:
		quit()
	case <-done:
	}
}

// reload rebuilds the table from the source file.
func (a *App) reload() reloadMsg {
	bus := a.model.Manager().Bus()
	def, err := tabledef.Load(a.config.Source)
	if err != nil {
		return reloadMsg{err: err}
	}
	m, err := tabledef.Build(def, tabledef.BuildOptions{Bus: bus, Logger: a.logger})
	if err != nil {
		return reloadMsg{err: err}
	}
	a.logger.Info("definition reloaded", "path", a.config.Source, "sections", m.Count())
	bus.Publish(event.NewTableReloadedEvent(a.config.Source, m.Count(), m.TotalItems()))
	return reloadMsg{manager: m}
}
