package cli

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

type spinnerTickMsg struct{}

type spinnerStopMsg struct{}

// spinnerModel is the bubbletea model behind Spinner.
type spinnerModel struct {
	message string
	frame   int
	done    bool
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

func (m spinnerModel) Init() tea.Cmd {
	return spinnerTick()
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinnerTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return styleIconSpinner.Render(spinnerFrames[m.frame]) + " " + StyleDim.Render(m.message)
}

// Spinner animates a status line while a pipeline stage runs. It stops on
// Stop or when its context ends.
type Spinner struct {
	program  *tea.Program
	ctx      context.Context
	finished chan struct{}
}

// newSpinner creates a spinner writing to w. Input is not read, so the
// terminal stays in normal mode for ctrl+c handling by the caller.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	return &Spinner{
		program: tea.NewProgram(spinnerModel{message: message},
			tea.WithContext(ctx),
			tea.WithOutput(w),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		ctx:      ctx,
		finished: make(chan struct{}),
	}
}

// Start runs the animation in the background.
func (s *Spinner) Start() {
	go func() {
		defer close(s.finished)
		_, _ = s.program.Run()
	}()
}

// Stop ends the animation and waits for the line to be cleared.
func (s *Spinner) Stop() {
	s.program.Send(spinnerStopMsg{})
	<-s.finished
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context ended.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
