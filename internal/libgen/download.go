// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/mjoshi/libshelf/pkg/types"
)

// DefaultChunkSize is the streaming write granularity in bytes.
const DefaultChunkSize = 2000

// Download streams url to destPath in fixed-size chunks, reporting the
// running byte count on w after every chunk. A failed transfer leaves a
// truncated file at destPath; callers that need atomicity should stream to
// a temporary path and rename on success.
func Download(ctx context.Context, client *http.Client, url, destPath string, cfg types.AcquisitionConfig, w io.Writer) error {
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}

	buf := make([]byte, chunk)
	var written int64
	for {
		n, readErr := io.ReadFull(resp.Body, buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", destPath, writeErr)
			}
			written += int64(n)
			fmt.Fprintf(w, "\r%d bytes", written)
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			f.Close()
			return fmt.Errorf("streaming download: %w", readErr)
		}
	}
	fmt.Fprintln(w)

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", destPath, err)
	}
	return nil
}
