package webgpu

import (
	"errors"
	"testing"

	"github.com/EngoEngine/glm"
)

func TestRenderReportsResizeFailure(t *testing.T) {
	failed := errors.New("resize swap chain: device lost")
	r := &Renderer{resizeErr: failed}
	if err := r.Render(glm.Ident4()); !errors.Is(err, failed) {
		t.Fatalf("Render = %v, want %v", err, failed)
	}
	if r.resizeErr != nil {
		t.Errorf("resize error kept after being reported: %v", r.resizeErr)
	}
}

func TestResizeIgnoresEmptyFramebuffer(t *testing.T) {
	r := &Renderer{}
	r.Resize(0, 0)
	r.Resize(800, 0)
	if r.resizeErr != nil {
		t.Errorf("resizeErr = %v", r.resizeErr)
	}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"Surface timed out", true},
		{"Surface is outdated", true},
		{"Surface was lost", true},
		{"Out of memory", false},
		{"resize swap chain: device lost", false},
	}
	for _, tt := range tests {
		if got := Transient(errors.New(tt.err)); got != tt.want {
			t.Errorf("Transient(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
