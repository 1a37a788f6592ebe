package permgraph

import (
	"strings"
	"testing"
)

func TestToDOT_Basic(t *testing.T) {
	g, err := Build([]string{"a", "b", "c"}, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	dot := ToDOT(g, DOTOptions{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"a b c" [label="a b c"]`) {
		t.Error("ToDOT() output missing start node")
	}
	if !strings.Contains(dot, `"a b c" -> "b a c";`) {
		t.Error("ToDOT() output missing first walk edge")
	}
	if strings.Contains(dot, "swap") {
		t.Error("ToDOT() plain output should not carry step labels")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g, err := Build([]string{"a", "b", "c"}, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	dot := ToDOT(g, DOTOptions{Detailed: true})

	if !strings.Contains(dot, `label="1: swap 0,1"`) {
		t.Error("ToDOT() detailed output missing first step label")
	}
	if !strings.Contains(dot, `label="2: swap 0,2"`) {
		t.Error("ToDOT() detailed output missing second step label")
	}
}

func TestToDOT_Transpositions(t *testing.T) {
	g, err := Build([]string{"a", "b", "c"}, Options{Transpositions: true})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	dot := ToDOT(g, DOTOptions{})

	if !strings.Contains(dot, "dir=none, style=dashed, color=grey") {
		t.Error("ToDOT() output missing neighborhood edge styling")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="8 8 640 480" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 640.00 480.00" width="640" height="480">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	g, err := Build([]string{"a", "b"}, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	svg, err := RenderSVG(ToDOT(g, DOTOptions{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	dot := `not valid DOT {{{`
	_, err := RenderSVG(dot)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
