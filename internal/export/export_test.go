package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

type listerFunc func(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error)

func (f listerFunc) List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error) {
	return f(ctx, filter)
}

var (
	start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

func samplePackages() []*repository.Package {
	return []*repository.Package{
		{
			Carrier:     "Mercado Livre",
			Code:        "44123456789",
			CaptureDate: end,
			CapturedAt:  end.Add(15*time.Hour + 4*time.Minute + 5*time.Second),
			Status:      repository.StatusCollected,
			BatchNumber: 2,
		},
		{
			Carrier:     "Mercado Livre",
			Code:        "44000000001",
			CaptureDate: start,
			CapturedAt:  start.Add(8 * time.Hour),
			Status:      repository.StatusPending,
			BatchNumber: 1,
		},
	}
}

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header and rows", func(t *testing.T) {
		var got repository.PackageFilter
		exp := NewExporter(listerFunc(func(_ context.Context, f repository.PackageFilter) ([]*repository.Package, error) {
			got = f
			return samplePackages(), nil
		}), "", nil)

		var buf bytes.Buffer
		rows, err := exp.Export(ctx, Request{From: start, To: end, Carrier: carrier.MercadoLivre, Status: repository.StatusCollected}, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, rows)
		assert.Equal(t, repository.PackageFilter{From: start, To: end, Carrier: "Mercado Livre", Status: "collected"}, got)
		assert.Equal(t,
			"Carrier,Package Code,Date,Time,Status,Batch Number\n"+
				"Mercado Livre,44123456789,2025-03-10,15:04:05,collected,2\n"+
				"Mercado Livre,44000000001,2025-03-01,08:00:00,pending,1\n",
			buf.String())
	})

	t.Run("start after end", func(t *testing.T) {
		exp := NewExporter(listerFunc(func(context.Context, repository.PackageFilter) ([]*repository.Package, error) {
			t.Fatal("store must not be queried")
			return nil, nil
		}), "", nil)

		_, err := exp.Export(ctx, Request{From: end, To: start}, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("nothing matches", func(t *testing.T) {
		exp := NewExporter(listerFunc(func(context.Context, repository.PackageFilter) ([]*repository.Package, error) {
			return nil, nil
		}), "", nil)

		var buf bytes.Buffer
		_, err := exp.Export(ctx, Request{From: start, To: end}, &buf)
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.Zero(t, buf.Len())
	})

	t.Run("storage error", func(t *testing.T) {
		dbErr := errors.New("database error")
		exp := NewExporter(listerFunc(func(context.Context, repository.PackageFilter) ([]*repository.Package, error) {
			return nil, dbErr
		}), "", nil)

		_, err := exp.Export(ctx, Request{From: start, To: end}, &bytes.Buffer{})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestExporter_ExportToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exp := NewExporter(listerFunc(func(context.Context, repository.PackageFilter) ([]*repository.Package, error) {
		return samplePackages(), nil
	}), dir, nil)
	exp.timeNow = func() time.Time { return time.Date(2025, 3, 10, 18, 5, 9, 0, time.UTC) }

	path, rows, err := exp.ExportToFile(context.Background(), Request{From: start, To: end})
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, filepath.Join(dir, "coleta_All_Carriers_2025-03-01_to_2025-03-10_20250310_180509.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "44000000001")
}

// brokenFile wraps a real file and fails on write or on close.
type brokenFile struct {
	file     *os.File
	writeErr error
	closeErr error
}

func (f *brokenFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.file.Write(p)
}

func (f *brokenFile) Close() error {
	if err := f.file.Close(); err != nil {
		return err
	}
	return f.closeErr
}

func TestExporter_ExportToFile_Failures(t *testing.T) {
	diskErr := errors.New("no space left on device")

	tests := []struct {
		name     string
		writeErr error
		closeErr error
		message  string
	}{
		{name: "write fails", writeErr: diskErr, message: "failed to flush CSV"},
		{name: "close fails", closeErr: diskErr, message: "failed to close export file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			exp := NewExporter(listerFunc(func(context.Context, repository.PackageFilter) ([]*repository.Package, error) {
				return samplePackages(), nil
			}), dir, nil)
			exp.createFile = func(name string) (io.WriteCloser, error) {
				file, err := os.Create(name)
				if err != nil {
					return nil, err
				}
				return &brokenFile{file: file, writeErr: tc.writeErr, closeErr: tc.closeErr}, nil
			}

			path, rows, err := exp.ExportToFile(context.Background(), Request{From: start, To: end})
			require.Error(t, err)
			assert.ErrorIs(t, err, diskErr)
			assert.Contains(t, err.Error(), tc.message)
			assert.Empty(t, path)
			assert.Zero(t, rows)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t,
		"coleta_Mercado_Livre_2025-03-01_to_2025-03-10_20250102_030405.csv",
		FileName(Request{From: start, To: end, Carrier: carrier.MercadoLivre}, now))
}
