// Package server streams a live terrain preview to SSH terminals. Every
// session runs its own generator.
package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gliderlabs/ssh"

	"volcano/internal/core"
	"volcano/internal/terrain"
)

// maxCatchUp bounds how many ticks a stalled session replays at once.
const maxCatchUp = 4

// SSHServer wraps the SSH listener.
type SSHServer struct {
	addr    string
	hostKey string
	cfg     terrain.Config

	// TPS is the preview frame rate; Speed scales simulated time per frame.
	TPS   int
	Speed float64
}

// NewSSHServer creates a server bound to addr that previews cfg.
func NewSSHServer(addr, hostKey string, cfg terrain.Config) *SSHServer {
	return &SSHServer{addr: addr, hostKey: hostKey, cfg: cfg, TPS: 15, Speed: 4}
}

// Start begins listening for SSH connections. It blocks.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}
	log.Printf("SSH preview listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	gen, err := terrain.NewWithConfig(s.cfg)
	if err != nil {
		fmt.Fprintf(sess, "Error: %v\n", err)
		return
	}
	view := newSession(gen, s.cfg.Seed)

	log.Printf("Session opened: %s", sess.RemoteAddr())
	defer log.Printf("Session closed: %s", sess.RemoteAddr())

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	io.WriteString(sess, enableAltScreen())
	io.WriteString(sess, hideCursor())
	io.WriteString(sess, clearScreen())
	defer func() {
		io.WriteString(sess, showCursor())
		io.WriteString(sess, disableAltScreen())
	}()

	inputCh := make(chan Action, 16)
	quitCh := make(chan struct{})

	go func() {
		defer close(quitCh)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					return
				}
				select {
				case inputCh <- action:
				default:
				}
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case inputCh <- ActionNone:
			default:
			}
		}
	}()

	tps := s.TPS
	if tps <= 0 {
		tps = 15
	}
	clock := core.NewFixedStep(tps)
	ticker := time.NewTicker(clock.Step())
	defer ticker.Stop()
	dt := s.Speed * clock.StepSeconds()

	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case action := <-inputCh:
			view.apply(action)
		case <-ticker.C:
			for n := clock.Due(maxCatchUp); n > 0; n-- {
				view.tick(dt)
			}
		}
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()
		if out := Frame(gen, w, h); out != "" {
			io.WriteString(sess, out)
		}
	}
}

// session is the per-connection viewer state. It is only touched from the
// session's render loop.
type session struct {
	gen      *terrain.Generator
	seed     int64
	paused   bool
	tickOnce bool
}

func newSession(gen *terrain.Generator, seed int64) *session {
	return &session{gen: gen, seed: seed}
}

func (s *session) apply(a Action) {
	switch a {
	case ActionReset:
		s.gen.Reset(s.seed)
	case ActionReseed:
		s.seed = time.Now().UnixNano()
		s.gen.Reset(s.seed)
	case ActionComplete:
		s.gen.AutoComplete()
	case ActionPause:
		s.paused = !s.paused
	case ActionStep:
		s.tickOnce = true
	}
}

func (s *session) tick(dt float64) {
	if s.paused && !s.tickOnce {
		return
	}
	s.gen.Update(dt)
	s.tickOnce = false
}
