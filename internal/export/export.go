package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var (
	ErrInvalidRange    = errors.New("start date cannot be after end date")
	ErrNothingToExport = errors.New("no packages registered in this period")
)

var header = []string{"Carrier", "Package Code", "Date", "Time", "Status", "Batch Number"}

type PackageLister interface {
	List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error)
}

// Request selects the records to export. A None carrier or an empty status
// means all.
type Request struct {
	From    time.Time
	To      time.Time
	Carrier carrier.Carrier
	Status  string
}

func (r Request) filter() repository.PackageFilter {
	return repository.PackageFilter{
		From:    r.From,
		To:      r.To,
		Carrier: string(r.Carrier),
		Status:  r.Status,
	}
}

type Exporter struct {
	packages   PackageLister
	dir        string
	logger     *zap.Logger
	timeNow    func() time.Time
	createFile func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func NewExporter(packages PackageLister, dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{packages: packages, dir: dir, logger: logger, timeNow: time.Now, createFile: createFile}
}

// Export writes the matching records as CSV and returns how many rows it wrote.
func (e *Exporter) Export(ctx context.Context, req Request, w io.Writer) (int, error) {
	packages, err := e.fetch(ctx, req)
	if err != nil {
		return 0, err
	}
	return writeCSV(w, packages)
}

// ExportToFile writes the export into the configured directory and returns the
// file path. Nothing is left on disk when the request is rejected or the
// write fails.
func (e *Exporter) ExportToFile(ctx context.Context, req Request) (string, int, error) {
	packages, err := e.fetch(ctx, req)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, FileName(req, e.timeNow()))
	file, err := e.createFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create export file: %w", err)
	}

	rows, err := writeCSV(file, packages)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close export file: %w", closeErr)
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			e.logger.Warn("failed to remove partial export", zap.String("path", path), zap.Error(rmErr))
		}
		e.logger.Error("failed to write export", zap.String("path", path), zap.Error(err))
		return "", 0, err
	}

	e.logger.Info("packages exported", zap.String("path", path), zap.Int("rows", rows))
	return path, rows, nil
}

func (e *Exporter) fetch(ctx context.Context, req Request) ([]*repository.Package, error) {
	if req.From.After(req.To) {
		return nil, ErrInvalidRange
	}

	packages, err := e.packages.List(ctx, req.filter())
	if err != nil {
		e.logger.Error("failed to export packages", zap.Error(err))
		return nil, fmt.Errorf("failed to export packages: %w", err)
	}
	if len(packages) == 0 {
		return nil, ErrNothingToExport
	}
	return packages, nil
}

// FileName builds coleta_<carrier>_<start>_to_<end>_<timestamp>.csv.
func FileName(req Request, now time.Time) string {
	suffix := "All_Carriers"
	if req.Carrier.IsSelected() {
		suffix = strings.ReplaceAll(string(req.Carrier), " ", "_")
	}
	return fmt.Sprintf("coleta_%s_%s_to_%s_%s.csv",
		suffix, req.From.Format(dateLayout), req.To.Format(dateLayout), now.Format("20060102_150405"))
}

func writeCSV(w io.Writer, packages []*repository.Package) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range packages {
		record := []string{
			p.Carrier,
			p.Code,
			p.CaptureDate.Format(dateLayout),
			p.CapturedAt.Format(timeLayout),
			p.Status,
			strconv.Itoa(p.BatchNumber),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return len(packages), nil
}
