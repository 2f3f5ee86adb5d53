package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/pkg/math"
)

func TestBBoxWireframeVertices(t *testing.T) {
	box := math.Box3{Min: mgl32.Vec3{-1, -2, -3}, Max: mgl32.Vec3{1, 2, 3}}
	verts := BBoxWireframeVertices(box)

	if len(verts) != BBoxWireframeVertexCount {
		t.Fatalf("got %d vertices, want %d", len(verts), BBoxWireframeVertexCount)
	}
	for i, v := range verts {
		if math.BoxFromPoints(box.Min, box.Max, v) != box {
			t.Errorf("vertex %d %v outside box", i, v)
		}
	}
	for i := 0; i < len(verts); i += 2 {
		d := verts[i+1].Sub(verts[i])
		axes := 0
		for _, c := range d {
			if c != 0 {
				axes++
			}
		}
		if axes != 1 {
			t.Errorf("edge %d is not axis aligned: %v", i/2, d)
		}
	}
}

func TestBBoxWireframeEmpty(t *testing.T) {
	if verts := BBoxWireframeVertices(math.EmptyBox()); verts != nil {
		t.Errorf("expected no vertices, got %d", len(verts))
	}
}

func TestBoxHelperPadding(t *testing.T) {
	box := math.Box3{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	n := BoxHelper(box, 0.5)

	if n.Geometry.Mode != scene.Lines {
		t.Fatalf("mode = %v, want lines", n.Geometry.Mode)
	}
	b := n.Geometry.BoundingBox()
	if b.Min != (mgl32.Vec3{-0.5, -0.5, -0.5}) || b.Max != (mgl32.Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("padded bounds = %v", b)
	}
}

func TestFlipPixels(t *testing.T) {
	// 1x2 image: bottom row red, top row blue
	pixels := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue")
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r == 0 {
		t.Errorf("bottom pixel should be red")
	}

	if _, err := FlipPixels(pixels, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "folio")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	pixels := make([]byte, 4*4*4)
	first, err := sc.CaptureFromPixels(pixels, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.CaptureFromPixels(pixels, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(first) != "folio_2024-05-01_12-00-00.png" {
		t.Errorf("unexpected name %s", first)
	}
	if first == second {
		t.Errorf("second capture overwrote %s", first)
	}

	f, err := os.Open(second)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(1)
	for i := 0; i < 3; i++ {
		if _, ok := c.Tick(0.25); ok {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	fps, ok := c.Tick(0.25)
	if !ok {
		t.Fatal("expected report after one second")
	}
	if fps != 4 {
		t.Errorf("fps = %v, want 4", fps)
	}
	if _, ok := c.Tick(0.25); ok {
		t.Error("counter did not reset")
	}
}
