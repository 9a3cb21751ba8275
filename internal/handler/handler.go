//go:generate mockgen -source ./handler.go -destination=./mocks/handler.go -package=mock_handler
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/account"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/alert"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/export"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

const dateLayout = "2006-01-02"

type Ledger interface {
	Register(ctx context.Context, selected carrier.Carrier, code, operator string) (*repository.Package, error)
	Close(ctx context.Context, selected carrier.Carrier, operator string) (*ledger.BatchResult, error)
	Reopen(ctx context.Context, selected carrier.Carrier, operator string) (*ledger.BatchResult, error)
	Remove(ctx context.Context, id int64, operator string) (*repository.Package, error)
	OpenBatch(ctx context.Context, c carrier.Carrier) (*ledger.OpenBatch, error)
	Summary(ctx context.Context, day time.Time, c carrier.Carrier) ([]*repository.BatchCount, error)
	Verify(ctx context.Context, code string) ([]ledger.Verification, error)
	BatchHistory(ctx context.Context, c carrier.Carrier, day time.Time) ([]*repository.BatchEvent, error)
	Today() time.Time
}

type Accounts interface {
	Authenticate(ctx context.Context, username, password string) (*account.Identity, error)
	List(ctx context.Context, actor account.Identity) ([]account.Identity, error)
	Create(ctx context.Context, actor account.Identity, username, password string, role account.Role) error
	Update(ctx context.Context, actor account.Identity, username, newUsername, password string, role account.Role) error
	Delete(ctx context.Context, actor account.Identity, username string) error
}

type Exporter interface {
	ExportToFile(ctx context.Context, req export.Request) (string, int, error)
}

type Notifier interface {
	Notify(kind alert.Kind) bool
}

type Deps struct {
	Ledger   Ledger
	Accounts Accounts
	Exporter Exporter
	Notifier Notifier
	Carriers *carrier.Registry
	Gatherer prometheus.Gatherer
	Out      io.Writer
}

// Handler runs the commands of one logged-in operator. It keeps the carrier
// the operator selected between commands.
type Handler struct {
	ledger   Ledger
	accounts Accounts
	exporter Exporter
	notifier Notifier
	carriers *carrier.Registry
	gatherer prometheus.Gatherer
	out      io.Writer

	user     account.Identity
	selected carrier.Carrier
}

func New(deps Deps) *Handler {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		ledger:   deps.Ledger,
		accounts: deps.Accounts,
		exporter: deps.Exporter,
		notifier: deps.Notifier,
		carriers: deps.Carriers,
		gatherer: deps.Gatherer,
		out:      deps.Out,
	}
}

func (h *Handler) User() account.Identity {
	return h.user
}

func (h *Handler) Selected() carrier.Carrier {
	return h.selected
}

func (h *Handler) println(a ...interface{}) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.out, format, a...)
}

func (h *Handler) HandleLogin(ctx context.Context, username, password string) error {
	id, err := h.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}
	h.user = *id
	return nil
}

func (h *Handler) HandleHelp() {
	h.println(`Available commands:
	<code> - Scan a package into the open batch of the selected carrier
	carrier <name|number> - Select the carrier
	list - Show the open batch of the selected carrier
	close - Close the open batch
	reopen - Reopen the last closed batch of today
	remove <id> - Remove a package from the open batch
	verify <code> - Look up a package code
	summary [YYYY-MM-DD|today] [carrier] - Count packages per batch
	history - Show today's batch history of the selected carrier
	export <YYYY-MM-DD> <YYYY-MM-DD> [carrier|all] [pending|collected|all] - Export to CSV
	users - List users (admin)
	useradd <username> <password> <admin|user> - Create user (admin)
	useredit <username> <new username> <admin|user> [password] - Edit user (admin)
	userdel <username> - Delete user (admin)
	stats - Show session counters
	exit - Exit program`)
	h.println("Carriers:")
	for i, c := range h.carriers.Carriers() {
		h.printf("  %d. %s\n", i+1, c)
	}
}

func (h *Handler) HandleCarrier(args []string) {
	if len(args) == 0 {
		h.println("Usage: carrier <name|number>")
		return
	}

	c, err := h.parseCarrier(strings.Join(args, " "))
	if err != nil {
		h.println("Error:", err)
		return
	}
	h.selected = c
	h.printf("Carrier selected: %s\n", c)
}

func (h *Handler) HandleScan(ctx context.Context, code string) {
	pkg, err := h.ledger.Register(ctx, h.selected, code, h.user.Username)
	if err != nil {
		rej, rejected := ledger.AsRejection(err)
		h.notifier.Notify(alert.KindFor(err, rejected && rej.Category() == ledger.CategoryDuplicate))
		if rejected {
			h.println("Rejected:", rej)
		} else {
			h.println("Error: could not register the package, try again")
		}
		return
	}

	h.notifier.Notify(alert.Success)
	h.printf("Registered %s | %s | batch %d | %s\n",
		pkg.Code, pkg.Carrier, pkg.BatchNumber, pkg.CapturedAt.Format("15:04:05"))

	if batch, err := h.ledger.OpenBatch(ctx, h.selected); err == nil {
		h.printf("Open batch total: %d\n", batch.Count())
	}
}

func (h *Handler) HandleList(ctx context.Context) {
	batch, err := h.ledger.OpenBatch(ctx, h.selected)
	if err != nil {
		h.println("Error:", err)
		return
	}

	if batch.Count() == 0 {
		h.printf("No open packages for %s today\n", batch.Carrier)
		return
	}

	h.printf("Open batch %d for %s (%d packages):\n", batch.BatchNumber(), batch.Carrier, batch.Count())
	for _, p := range batch.Packages {
		h.printf("- #%d | %s | %s\n", p.ID, p.Code, p.CapturedAt.Format("15:04:05"))
	}
}

func (h *Handler) HandleClose(ctx context.Context) {
	res, err := h.ledger.Close(ctx, h.selected, h.user.Username)
	if h.reportLifecycle(err) {
		return
	}
	h.printf("Batch %d of %s closed: %d packages collected\n", res.BatchNumber, res.Carrier, res.Affected)
}

func (h *Handler) HandleReopen(ctx context.Context) {
	res, err := h.ledger.Reopen(ctx, h.selected, h.user.Username)
	if h.reportLifecycle(err) {
		return
	}
	h.printf("Batch %d of %s reopened: %d packages pending\n", res.BatchNumber, res.Carrier, res.Affected)
}

// reportLifecycle prints err and reports whether there was one.
func (h *Handler) reportLifecycle(err error) bool {
	switch {
	case err == nil:
		return false
	case ledger.IsWarning(err):
		h.println("Warning:", err)
	default:
		h.notifier.Notify(alert.Error)
		h.println("Error:", err)
	}
	return true
}

func (h *Handler) HandleRemove(ctx context.Context, args []string) {
	if len(args) != 1 {
		h.println("Usage: remove <id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		h.println("Invalid package id")
		return
	}

	pkg, err := h.ledger.Remove(ctx, id, h.user.Username)
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		h.printf("Error: package #%d not found\n", id)
	case err != nil:
		h.println("Error:", err)
	default:
		h.printf("Package %s removed from batch %d\n", pkg.Code, pkg.BatchNumber)
	}
}

func (h *Handler) HandleVerify(ctx context.Context, args []string) {
	if len(args) != 1 {
		h.println("Usage: verify <code>")
		return
	}

	found, err := h.ledger.Verify(ctx, args[0])
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			h.printf("Package %s not found\n", args[0])
			return
		}
		h.println("Error:", err)
		return
	}

	for _, v := range found {
		h.printf("- %s | %s | %s %s | batch %d | %s\n",
			v.Package.Code, v.Package.Carrier, v.Package.CaptureDate.Format(dateLayout),
			v.Package.CapturedAt.Format("15:04:05"), v.Package.BatchNumber, v.State)
	}
}

func (h *Handler) HandleSummary(ctx context.Context, args []string) {
	day := h.ledger.Today()
	if len(args) > 0 {
		d, err := h.parseDate(args[0])
		if err != nil {
			h.println("Invalid date format. Use YYYY-MM-DD")
			return
		}
		day = d
	}

	c := carrier.None
	if len(args) > 1 {
		parsed, err := h.parseCarrier(strings.Join(args[1:], " "))
		if err != nil {
			h.println("Error:", err)
			return
		}
		c = parsed
	}

	counts, err := h.ledger.Summary(ctx, day, c)
	if err != nil {
		h.println("Error:", err)
		return
	}

	scope := "all carriers"
	if c.IsSelected() {
		scope = string(c)
	}
	if len(counts) == 0 {
		h.printf("No packages on %s for %s\n", day.Format(dateLayout), scope)
		return
	}

	h.printf("Batches on %s for %s:\n", day.Format(dateLayout), scope)
	total := 0
	for _, bc := range counts {
		h.printf("- batch %d: %d packages\n", bc.BatchNumber, bc.Count)
		total += bc.Count
	}
	h.printf("Total: %d\n", total)
}

func (h *Handler) HandleHistory(ctx context.Context) {
	events, err := h.ledger.BatchHistory(ctx, h.selected, h.ledger.Today())
	if err != nil {
		h.println("Error:", err)
		return
	}

	if len(events) == 0 {
		h.println("No batch changes today")
		return
	}

	for _, e := range events {
		by := "-"
		if e.Operator != nil {
			by = *e.Operator
		}
		h.printf("- %s | batch %d %s | %d packages | by %s\n",
			e.ChangedAt.Format("15:04:05"), e.BatchNumber, e.Action, e.Affected, by)
	}
}

func (h *Handler) HandleExport(ctx context.Context, args []string) {
	if len(args) < 2 || len(args) > 4 {
		h.println("Usage: export <YYYY-MM-DD> <YYYY-MM-DD> [carrier|all] [pending|collected|all]")
		return
	}

	from, err := h.parseDate(args[0])
	if err != nil {
		h.println("Invalid date format. Use YYYY-MM-DD")
		return
	}
	to, err := h.parseDate(args[1])
	if err != nil {
		h.println("Invalid date format. Use YYYY-MM-DD")
		return
	}

	req := export.Request{From: from, To: to}
	if len(args) > 2 && !strings.EqualFold(args[2], "all") {
		if req.Carrier, err = h.parseCarrier(args[2]); err != nil {
			h.println("Error:", err)
			return
		}
	}
	if len(args) > 3 && !strings.EqualFold(args[3], "all") {
		switch status := strings.ToLower(args[3]); status {
		case repository.StatusPending, repository.StatusCollected:
			req.Status = status
		default:
			h.println("Invalid status. Use pending, collected or all")
			return
		}
	}

	path, rows, err := h.exporter.ExportToFile(ctx, req)
	switch {
	case errors.Is(err, export.ErrInvalidRange), errors.Is(err, export.ErrNothingToExport):
		h.println("Warning:", err)
	case err != nil:
		h.println("Error:", err)
	default:
		h.printf("Exported %d packages to %s\n", rows, path)
	}
}

func (h *Handler) HandleUsers(ctx context.Context) {
	users, err := h.accounts.List(ctx, h.user)
	if err != nil {
		h.println("Error:", err)
		return
	}
	for _, u := range users {
		h.printf("- %s (%s)\n", u.Username, u.Role)
	}
}

func (h *Handler) HandleUserAdd(ctx context.Context, args []string) {
	if len(args) != 3 {
		h.println("Usage: useradd <username> <password> <admin|user>")
		return
	}

	role, err := account.ParseRole(args[2])
	if err != nil {
		h.println("Error:", err)
		return
	}
	if err := h.accounts.Create(ctx, h.user, args[0], args[1], role); err != nil {
		h.println("Error:", err)
		return
	}
	h.printf("User %s created\n", args[0])
}

func (h *Handler) HandleUserEdit(ctx context.Context, args []string) {
	if len(args) != 3 && len(args) != 4 {
		h.println("Usage: useredit <username> <new username> <admin|user> [password]")
		return
	}

	role, err := account.ParseRole(args[2])
	if err != nil {
		h.println("Error:", err)
		return
	}
	password := ""
	if len(args) == 4 {
		password = args[3]
	}

	if err := h.accounts.Update(ctx, h.user, args[0], args[1], password, role); err != nil {
		h.println("Error:", err)
		return
	}
	if h.user.Username == args[0] {
		h.user.Username, h.user.Role = args[1], role
	}
	h.printf("User %s updated\n", args[1])
}

func (h *Handler) HandleUserDel(ctx context.Context, args []string) {
	if len(args) != 1 {
		h.println("Usage: userdel <username>")
		return
	}
	if err := h.accounts.Delete(ctx, h.user, args[0]); err != nil {
		h.println("Error:", err)
		return
	}
	h.printf("User %s deleted\n", args[0])
}

func (h *Handler) HandleStats() {
	samples, err := metrics.Snapshot(h.gatherer)
	if err != nil {
		h.println("Error:", err)
		return
	}
	for _, s := range samples {
		h.println(s)
	}
}

// parseCarrier accepts names with underscores for spaces so that
// "Mercado_Livre" fits in one argument.
func (h *Handler) parseCarrier(s string) (carrier.Carrier, error) {
	c, err := h.carriers.Parse(strings.ReplaceAll(s, "_", " "))
	if err != nil {
		return carrier.None, fmt.Errorf("%w: %s", err, s)
	}
	return c, nil
}

func (h *Handler) parseDate(s string) (time.Time, error) {
	if strings.EqualFold(s, "today") {
		return h.ledger.Today(), nil
	}
	return time.Parse(dateLayout, s)
}
