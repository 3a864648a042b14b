package placeholder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"mwalali_homes/internal/placeholder"
)

func TestDownloader_FillsMissingOnly(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("text") == "broken" {
			http.Error(w, "nope", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("PNG:" + r.URL.Query().Get("text")))
	}))
	defer ts.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "present.jpg"), []byte("real"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := &placeholder.Downloader{
		Dir:     dir,
		Workers: 2,
		Every:   time.Millisecond,
		HC:      ts.Client(),
		Source: func(name string) string {
			return ts.URL + "/?text=" + url.QueryEscape(name[:len(name)-len(filepath.Ext(name))])
		},
	}
	rep := d.Run(context.Background(), []string{
		"present.jpg",
		"1BR 65SQM.jpg",
		"amenities/gym.png",
		"broken.jpg",
		"brochure.pdf",
		"https://cdn.example.com/x.jpg",
		"../escape.jpg",
	})

	sort.Strings(rep.Downloaded)
	if len(rep.Downloaded) != 2 || rep.Downloaded[0] != "1BR 65SQM.jpg" || rep.Downloaded[1] != "amenities/gym.png" {
		t.Fatalf("downloaded %v", rep.Downloaded)
	}
	if _, ok := rep.Failed["broken.jpg"]; !ok || len(rep.Failed) != 1 {
		t.Fatalf("failed %v", rep.Failed)
	}
	if len(rep.Skipped) != 4 {
		t.Fatalf("skipped %v", rep.Skipped)
	}
	if hits.Load() != 3 {
		t.Fatalf("server hits = %d, want 3", hits.Load())
	}

	b, err := os.ReadFile(filepath.Join(dir, "amenities", "gym.png"))
	if err != nil || string(b) != "PNG:amenities/gym" {
		t.Fatalf("gym.png = %q, %v", b, err)
	}
	if b, _ := os.ReadFile(filepath.Join(dir, "present.jpg")); string(b) != "real" {
		t.Fatalf("existing file overwritten: %q", b)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.jpg")); !os.IsNotExist(err) {
		t.Fatalf("failed download left a file: %v", err)
	}
}

func TestDownloader_CancelReportsEveryPendingName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	names := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "notes.pdf"}
	d := &placeholder.Downloader{
		Dir:     t.TempDir(),
		Workers: 1,
		Every:   time.Millisecond,
		HC:      ts.Client(),
		Source:  func(name string) string { return ts.URL + "/" + name },
	}
	rep := d.Run(ctx, names)

	if len(rep.Downloaded) != 0 {
		t.Fatalf("downloaded %v", rep.Downloaded)
	}
	if len(rep.Failed) != 4 {
		t.Fatalf("every image should be reported failed, got %v", rep.Failed)
	}
	if len(rep.Skipped) != 1 || rep.Skipped[0] != "notes.pdf" {
		t.Fatalf("skipped %v", rep.Skipped)
	}
}
