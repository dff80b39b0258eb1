package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBar_NonInteractivePrintsSummaryOnce(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, "Uploading a.txt", 2048)
	b.Add(1024)
	b.Add(1024)
	if out.Len() != 0 {
		t.Fatalf("unexpected output before close: %q", out.String())
	}
	b.Close()
	b.Close()
	if got := out.String(); got != "Uploading a.txt: 2.0 KiB/2.0 KiB\n" {
		t.Fatalf("out=%q", got)
	}
}

func TestBar_InteractiveRedrawsPerPercent(t *testing.T) {
	var out bytes.Buffer
	b := newBar(&out, "Downloading b.zip", 200, true)
	b.Add(1)
	b.Add(1)
	b.Add(1)
	b.Close()
	b.Add(50)

	draws := strings.Count(out.String(), "\r")
	// 0% and 1% from the adds, plus the final draw.
	if draws != 3 {
		t.Fatalf("draws=%d out=%q", draws, out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Fatalf("expected trailing newline: %q", out.String())
	}
	if !strings.Contains(out.String(), "Downloading b.zip") {
		t.Fatalf("missing label: %q", out.String())
	}
}

func TestBar_ZeroTotal(t *testing.T) {
	b := newBar(&bytes.Buffer{}, "x", 0, false)
	if b.percent() != 100 {
		t.Fatalf("percent=%d", b.percent())
	}
}
