package cli

import (
	"net/url"
	"strings"
	"testing"

	"github.com/kweiler/papergrid/pkg/errors"
)

func TestApplyQuery(t *testing.T) {
	q := url.Values{}
	q.Set("page_size", "a4")
	q.Set("grid_size", "12.5")
	q.Set("margin", "20, 25,20,25")
	q.Set("major_line_interval", "4")
	q.Set("stretch_grid", "false")
	q.Set("background_color", "white")

	opts := defaultRenderOpts()
	if err := applyQuery(q, &opts); err != nil {
		t.Fatalf("applyQuery() unexpected error: %v", err)
	}

	if opts.pageSize != "a4" {
		t.Errorf("pageSize = %q, want a4", opts.pageSize)
	}
	if opts.gridSize != 12.5 {
		t.Errorf("gridSize = %v, want 12.5", opts.gridSize)
	}
	if len(opts.margin) != 4 || opts.margin[1] != 25 {
		t.Errorf("margin = %v, want [20 25 20 25]", opts.margin)
	}
	if opts.majorInterval != 4 {
		t.Errorf("majorInterval = %d, want 4", opts.majorInterval)
	}
	if opts.stretch {
		t.Error("stretch = true, want false")
	}
	if opts.backgroundColor != "white" {
		t.Errorf("backgroundColor = %q, want white", opts.backgroundColor)
	}
	// Untouched keys keep defaults.
	if opts.minorColor != "lightgreen" {
		t.Errorf("minorColor = %q, want default lightgreen", opts.minorColor)
	}
}

func TestApplyQueryErrors(t *testing.T) {
	tests := []struct {
		name     string
		key, val string
		wantCode errors.Code
	}{
		{"bad margin", "margin", "20,notanumber", errors.ErrCodeInvalidMargin},
		{"bad float", "grid_size", "twelve", errors.ErrCodeInvalidFormat},
		{"bad int", "major_line_interval", "4.5", errors.ErrCodeInvalidFormat},
		{"bad bool", "stretch_grid", "maybe", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tt.key, tt.val)
			opts := defaultRenderOpts()
			if err := applyQuery(q, &opts); !errors.Is(err, tt.wantCode) {
				t.Errorf("applyQuery() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestRenderPreview(t *testing.T) {
	q := url.Values{}
	q.Set("grid_size", "10")
	q.Set("margin", "30,30,30,30")

	data, l, err := renderPreview(q)
	if err != nil {
		t.Fatalf("renderPreview() unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Error("renderPreview() did not produce SVG")
	}
	if l.NumVSpaces != 55 {
		t.Errorf("NumVSpaces = %d, want 55", l.NumVSpaces)
	}
}

func TestRenderPreviewReportsBadParameters(t *testing.T) {
	q := url.Values{}
	q.Set("major_line_color", "blurple")
	if _, _, err := renderPreview(q); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("renderPreview() error = %v, want code %v", err, errors.ErrCodeInvalidColor)
	}
}
