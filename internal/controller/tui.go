package controller

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/peptrace/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeTrace}
	for _, opt := range options {
		opt(cfg)
	}

	model := newTraceModel(cfg.mode)

	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.resize(width)
		}
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayRunInfo shows the run header.
func (t *TUI) DisplayRunInfo(source m.Path, peaks int, threads int) {
	t.ensureStarted()
	t.send(runInfoMsg{source: string(source), peaks: peaks, threads: threads})
}

// DisplayStageStarted moves the progress display to stage.
func (t *TUI) DisplayStageStarted(stage string, index, total int) {
	t.ensureStarted()
	t.send(stageStartedMsg{stage: stage, index: index, total: total})
}

// DisplayStageCompleted records the stage outcome.
func (t *TUI) DisplayStageCompleted(stage string, items int, elapsed time.Duration) {
	t.ensureStarted()
	t.send(stageCompletedMsg{stage: stage, items: items, elapsed: elapsed})
}

// DisplayModel shows the chain table of the finished model or the error.
func (t *TUI) DisplayModel(report m.Report, saved m.Path, err error) error {
	t.ensureStarted()

	msg := modelMsg{saved: string(saved), err: err}
	for _, chain := range report.Chains {
		msg.chains = append(msg.chains, chainRow{id: chain.ID, residues: chain.Residues, score: chain.Score})
		msg.residues += chain.Residues
	}

	t.send(msg)

	return err
}

// DisplayRankedLinks shows the ranked candidate links or the error.
func (t *TUI) DisplayRankedLinks(links []m.DirectedLink, err error) error {
	t.ensureStarted()

	msg := linksMsg{err: err}
	for i, link := range links {
		msg.links = append(msg.links, linkRow(i, link))
	}

	t.send(msg)

	return err
}
