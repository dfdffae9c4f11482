package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	liveresize "github.com/mmngadi/go-liveresize"
	"github.com/mmngadi/go-liveresize/config"
)

// simWindow is an in-memory stand-in for a native window.
type simWindow struct {
	w, h    int
	x, y    int
	monitor liveresize.Rect
}

func (s *simWindow) ClientSize() (int, int)         { return s.w, s.h }
func (s *simWindow) Position() (int, int)           { return s.x, s.y }
func (s *simWindow) SetPosition(x, y int)           { s.x, s.y = x, y }
func (s *simWindow) MonitorBounds() liveresize.Rect { return s.monitor }

// simRenderer records backbuffer resizes and frames instead of drawing.
type simRenderer struct {
	w, h    int
	vp      liveresize.Viewport
	resizes int
	frames  int
	report  func(format string, args ...any)
}

func (s *simRenderer) ResizeBackbuffer(w, h int) {
	s.w, s.h = w, h
	s.resizes++
	s.report("  backbuffer -> %dx%d", w, h)
}
func (s *simRenderer) BackbufferSize() (int, int)         { return s.w, s.h }
func (s *simRenderer) SetViewport(vp liveresize.Viewport) { s.vp = vp }
func (s *simRenderer) RenderFrame() {
	s.frames++
	s.report("  frame %d, viewport %s", s.frames, s.vp)
}

// simTicker fires only when the script says so.
type simTicker struct {
	fn func()
}

func (t *simTicker) Start(_ time.Duration, fn func()) error {
	t.fn = fn
	return nil
}
func (t *simTicker) Stop() { t.fn = nil }
func (t *simTicker) fire() {
	if t.fn != nil {
		t.fn()
	}
}

// simHook injects scripted messages in place of a native message hook.
type simHook struct {
	handler func(liveresize.Message) uintptr
	ticker  *simTicker
}

func (h *simHook) Install(handler func(liveresize.Message) uintptr) error {
	h.handler = handler
	return nil
}
func (h *simHook) Uninstall()                                   { h.handler = nil }
func (h *simHook) ForwardToOriginal(liveresize.Message) uintptr { return 0 }
func (h *simHook) Ticker() liveresize.TickSource                { return h.ticker }

func (h *simHook) send(code uint32) {
	if h.handler != nil {
		h.handler(liveresize.Message{Code: code})
	}
}

// simToggle reports one pending press when armed.
type simToggle struct {
	pending bool
}

func (t *simToggle) TogglePressed() bool {
	pressed := t.pending
	t.pending = false
	return pressed
}

func newSimCommand() *cobra.Command {
	var (
		fromSize string
		toSize   string
		steps    int
		toggleAt int
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a scripted interactive-resize session",
		Long: `Run a scripted resize session against in-memory services.

The script drags the window client area from --from to --to over --steps
timer ticks, then releases. With --toggle-at N a fullscreen toggle fires
after drag step N. Every backbuffer resize and frame is printed so the
resize behavior can be inspected without a window.`,
		Example: `  liveresize sim --from 800x600 --to 1280x720 --steps 8
  liveresize sim --toggle-at 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fromW, fromH, err := parseSize(fromSize)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			toW, toH, err := parseSize(toSize)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}

			report := func(format string, args ...any) {
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
				}
			}
			return runSim(cfg, cmd.OutOrStdout(), report, fromW, fromH, toW, toH, steps, toggleAt)
		},
	}

	cmd.Flags().StringVar(&fromSize, "from", "800x600", "Starting client size, WxH")
	cmd.Flags().StringVar(&toSize, "to", "1280x720", "Final client size, WxH")
	cmd.Flags().IntVar(&steps, "steps", 6, "Number of drag ticks between the two sizes")
	cmd.Flags().IntVar(&toggleAt, "toggle-at", 0, "Fire a fullscreen toggle after this drag step (0 = never)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Print only the final summary")

	return cmd
}

func runSim(cfg *config.Config, out io.Writer, report func(string, ...any), fromW, fromH, toW, toH, steps, toggleAt int) error {
	win := &simWindow{
		w: fromW, h: fromH,
		x: 100, y: 100,
		monitor: liveresize.Rect{Width: 1920, Height: 1080},
	}
	renderer := &simRenderer{w: fromW, h: fromH, report: report}
	toggle := &simToggle{}
	canvas := liveresize.NewVirtualCanvas(cfg.Video.VirtualWidth, cfg.Video.VirtualHeight)
	hook := &simHook{ticker: &simTicker{}}

	session := liveresize.NewSession(win, renderer, canvas, toggle,
		liveresize.WithHook(hook),
		liveresize.WithPumpInterval(time.Duration(cfg.Video.PumpIntervalMS)*time.Millisecond),
	)
	if err := session.InstallHook(); err != nil {
		return err
	}
	defer session.UninstallHook()

	report("canvas %dx%d, window %dx%d", cfg.Video.VirtualWidth, cfg.Video.VirtualHeight, fromW, fromH)

	report("idle frame before the drag")
	session.Frame()

	report("drag begins")
	hook.send(liveresize.MsgEnterSizeMove)

	for step := 1; step <= steps; step++ {
		win.w = fromW + (toW-fromW)*step/steps
		win.h = fromH + (toH-fromH)*step/steps
		report("drag step %d/%d: client %dx%d", step, steps, win.w, win.h)
		hook.ticker.fire()

		if toggleAt > 0 && step == toggleAt {
			report("fullscreen toggle pressed")
			toggle.pending = true
			hook.ticker.fire()
		}
	}

	report("drag released")
	hook.send(liveresize.MsgExitSizeMove)

	report("idle frame after the drag")
	session.Frame()

	fmt.Fprintf(out, "summary: %d frames, %d backbuffer resizes, final backbuffer %dx%d, mode %s\n",
		renderer.frames, renderer.resizes, renderer.w, renderer.h, session.Display().Mode())
	return nil
}

// parseSize parses "WxH" into positive integers.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q", hs)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %dx%d must be positive", w, h)
	}
	return w, h, nil
}
