package charts

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnippetRendererProducesFragment(t *testing.T) {
	figure := EmptyFigure()

	var buf bytes.Buffer
	if err := figure.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "<div") || !strings.Contains(html, "echarts.init") {
		t.Error("expected chart container and init script")
	}
	if strings.Contains(html, "<html") || strings.Contains(html, "<head") {
		t.Error("expected a fragment, not a full page")
	}
}

func TestSnippetRendererRepeatedRenders(t *testing.T) {
	figure, err := BuildHistogram(demoTable(t))
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		if err := figure.Render(&buf); err != nil {
			t.Fatalf("render %d failed: %v", i, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("render %d produced no output", i)
		}
	}
}
