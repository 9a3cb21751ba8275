package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/account"
)

const maxLoginAttempts = 3

var ErrLoginFailed = errors.New("too many failed login attempts")

// Session reads operator input line by line.
type Session struct {
	handler *Handler
	scanner *bufio.Scanner
}

func NewSession(h *Handler, in io.Reader) *Session {
	return &Session{handler: h, scanner: bufio.NewScanner(in)}
}

func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.handler.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// Login asks for credentials until they are accepted or the attempts run out.
func (s *Session) Login(ctx context.Context) error {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, ok := s.readLine("Username: ")
		if !ok {
			return io.EOF
		}
		password, ok := s.readLine("Password: ")
		if !ok {
			return io.EOF
		}

		err := s.handler.HandleLogin(ctx, username, password)
		if err == nil {
			user := s.handler.User()
			s.handler.printf("Welcome, %s (%s)\n", user.Username, user.Role)
			return nil
		}
		if !errors.Is(err, account.ErrInvalidCredentials) {
			return err
		}
		s.handler.println("Invalid username or password")
	}
	return ErrLoginFailed
}

// Run executes commands until exit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.handler.println("Type 'help' for commands. Select a carrier before scanning.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, ok := s.readLine(s.prompt())
		if !ok {
			return s.scanner.Err()
		}
		if line == "" {
			continue
		}
		if quit := s.handler.Execute(ctx, line); quit {
			return nil
		}
	}
}

func (s *Session) prompt() string {
	return fmt.Sprintf("[%s] > ", s.handler.Selected())
}

// Execute runs one input line. Anything that is not a command is a scan.
func (h *Handler) Execute(ctx context.Context, line string) (quit bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	switch strings.ToLower(args[0]) {
	case "help":
		h.HandleHelp()
	case "carrier":
		h.HandleCarrier(args[1:])
	case "list":
		h.HandleList(ctx)
	case "close":
		h.HandleClose(ctx)
	case "reopen":
		h.HandleReopen(ctx)
	case "remove":
		h.HandleRemove(ctx, args[1:])
	case "verify":
		h.HandleVerify(ctx, args[1:])
	case "summary":
		h.HandleSummary(ctx, args[1:])
	case "history":
		h.HandleHistory(ctx)
	case "export":
		h.HandleExport(ctx, args[1:])
	case "users":
		h.HandleUsers(ctx)
	case "useradd":
		h.HandleUserAdd(ctx, args[1:])
	case "useredit":
		h.HandleUserEdit(ctx, args[1:])
	case "userdel":
		h.HandleUserDel(ctx, args[1:])
	case "stats":
		h.HandleStats()
	case "exit", "quit":
		return true
	default:
		h.HandleScan(ctx, line)
	}
	return false
}
