package placeholder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"mwalali_homes/internal/adapters/observability"
)

// Downloader fills a public directory with placeholder images for assets
// that are not there yet.
type Downloader struct {
	Dir     string
	Workers int
	Every   time.Duration // minimum spacing between requests
	HC      *http.Client
	Source  func(name string) string // defaults to URL
}

type Report struct {
	Downloaded []string
	Skipped    []string
	Failed     map[string]error
}

func (d *Downloader) Run(ctx context.Context, names []string) Report {
	workers := d.Workers
	if workers <= 0 {
		workers = 4
	}
	every := d.Every
	if every <= 0 {
		every = 50 * time.Millisecond
	}
	hc := d.HC
	if hc == nil {
		hc = &http.Client{Timeout: 20 * time.Second}
	}
	src := d.Source
	if src == nil {
		src = URL
	}

	rep := Report{Failed: map[string]error{}}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(workers))
	rl := rate.NewLimiter(rate.Every(every), 1)

	var abandoned []string
	for i, name := range names {
		dst, ok := d.target(name)
		if !ok {
			rep.Skipped = append(rep.Skipped, name)
			continue
		}
		if _, err := os.Stat(dst); err == nil {
			rep.Skipped = append(rep.Skipped, name)
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			abandoned = names[i:]
			break
		}
		wg.Add(1)
		go func(name, dst string) {
			defer wg.Done()
			defer sem.Release(1)

			err := rl.Wait(ctx)
			if err == nil {
				err = fetch(ctx, hc, src(name), dst)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str("asset", name).Msg("placeholder download failed")
				rep.Failed[name] = err
				return
			}
			log.Info().Str("asset", name).Msg("placeholder written")
			rep.Downloaded = append(rep.Downloaded, name)
		}(name, dst)
	}
	wg.Wait()

	// names never attempted because ctx ended; workers are done, no lock needed
	for _, name := range abandoned {
		if _, ok := d.target(name); ok {
			rep.Failed[name] = ctx.Err()
		} else {
			rep.Skipped = append(rep.Skipped, name)
		}
	}
	return rep
}

// target maps an asset name into Dir. Remote URLs, non-images and names that
// escape Dir are skipped.
func (d *Downloader) target(name string) (string, bool) {
	if strings.Contains(name, "://") || !IsImage(name) {
		return "", false
	}
	rel := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(d.Dir, rel), true
}

func fetch(ctx context.Context, hc *http.Client, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observability.ObserveExternal("placeholder", "image", 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("placeholder", "image", resp.StatusCode, time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("placeholder %s: status %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".placeholder-*")
	if err != nil {
		return err
	}
	_, cerr := io.Copy(tmp, resp.Body)
	if err := errors.Join(cerr, tmp.Close()); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
