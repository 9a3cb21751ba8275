package alert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

var ErrNoSound = errors.New("alert sound file not found")

// BellPlayer rings the terminal bell once for success, twice for errors and
// three times for duplicates.
type BellPlayer struct {
	mu  sync.Mutex
	Out io.Writer
}

func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{Out: out}
}

func (p *BellPlayer) Play(_ context.Context, kind Kind) error {
	n := 1
	switch kind {
	case Error:
		n = 2
	case Duplicate:
		n = 3
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.Out, strings.Repeat("\a", n))
	return err
}

// CommandPlayer runs an external audio command with the sound file as its
// last argument. Success alerts stay silent; they only use Fallback.
type CommandPlayer struct {
	Command   string
	Args      []string
	SoundPath string
	Fallback  Player
}

func (p *CommandPlayer) Play(ctx context.Context, kind Kind) error {
	if kind == Success || p.Command == "" {
		return p.fallback(ctx, kind, nil)
	}
	if _, err := os.Stat(p.SoundPath); err != nil {
		return p.fallback(ctx, kind, fmt.Errorf("%w: %s", ErrNoSound, p.SoundPath))
	}

	args := append(append([]string(nil), p.Args...), p.SoundPath)
	out, err := exec.CommandContext(ctx, p.Command, args...).CombinedOutput()
	if err != nil {
		return p.fallback(ctx, kind, fmt.Errorf("%s: %w: %s", p.Command, err, strings.TrimSpace(string(out))))
	}
	return nil
}

// fallback plays through Fallback when set and still reports cause.
func (p *CommandPlayer) fallback(ctx context.Context, kind Kind, cause error) error {
	if p.Fallback != nil {
		if err := p.Fallback.Play(ctx, kind); err != nil {
			return errors.Join(cause, err)
		}
	}
	return cause
}
