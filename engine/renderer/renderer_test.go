package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/game_object"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

const (
	testWidth  = 96
	testHeight = 64
)

func roomObjects(t *testing.T, d room.Dimensions) []game_object.GameObject {
	t.Helper()
	surfaces, err := room.Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var objs []game_object.GameObject
	for i, s := range surfaces {
		mat := material.ForRole(s.Role)
		mdl, err := model.FromSurface(s, mat.BaseColor())
		if err != nil {
			t.Fatalf("FromSurface(%s): %v", s.Role, err)
		}
		objs = append(objs, game_object.NewGameObject(
			game_object.WithID(uint64(i)),
			game_object.WithModel(mdl),
			game_object.WithMaterial(mat),
		))

		edge := material.Edge()
		outline, err := model.OutlineFromSurface(s, edge.BaseColor())
		if err != nil {
			t.Fatalf("OutlineFromSurface(%s): %v", s.Role, err)
		}
		objs = append(objs, game_object.NewGameObject(
			game_object.WithID(uint64(100+i)),
			game_object.WithKind(game_object.KindOutline),
			game_object.WithModel(outline),
			game_object.WithMaterial(edge),
		))
	}
	return objs
}

func placedCamera(t *testing.T, d room.Dimensions, v room.View) camera.Camera {
	t.Helper()
	pose, err := room.Place(d, v)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	cam := camera.NewCamera(camera.WithAspect(float32(testWidth) / float32(testHeight)))
	cam.SetPosition(pose.Position[0], pose.Position[1], pose.Position[2])
	cam.LookAt(pose.LookAt[0], pose.LookAt[1], pose.LookAt[2])
	return cam
}

func backgroundNRGBA() color.NRGBA {
	bg := material.Background()
	return color.NRGBA{R: uint8(bg[0]*255 + 0.5), G: uint8(bg[1]*255 + 0.5), B: uint8(bg[2]*255 + 0.5), A: 255}
}

func countPixels(img image.Image, match func(color.NRGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if match(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)) {
				n++
			}
		}
	}
	return n
}

func nearColor(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2
}

func TestDefaultPipelinesRegistered(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	if r.BackendType() != BackendTypeSoftware {
		t.Fatalf("BackendType() = %v", r.BackendType())
	}
	if w, h := r.Size(); w != testWidth || h != testHeight {
		t.Fatalf("Size() = %dx%d", w, h)
	}
	surface := r.Pipeline(material.PipelineSurface)
	outline := r.Pipeline(material.PipelineOutline)
	if surface == nil || outline == nil {
		t.Fatalf("default pipelines missing: %v", r.Pipelines())
	}
	if surface.Topology() != model.TopologyTriangles || outline.Topology() != model.TopologyLines {
		t.Errorf("topologies = %v, %v", surface.Topology(), outline.Topology())
	}
	if outline.DepthBias() >= 0 {
		t.Errorf("outline depth bias = %v, want negative", outline.DepthBias())
	}
}

func TestSoftwareRendererDrawsRoom(t *testing.T) {
	d := room.DefaultDimensions
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	if err := r.Sync(1, roomObjects(t, d)); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	view := FrameView{Camera: placedCamera(t, d, room.ViewSide), Lights: light.DefaultRig()}
	if err := r.Render(view); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := r.Image()
	if img == nil {
		t.Fatal("Image() = nil after a rendered frame")
	}
	if got := img.Bounds().Size(); got.X != testWidth || got.Y != testHeight {
		t.Fatalf("image size = %v", got)
	}

	bg := backgroundNRGBA()
	covered := countPixels(img, func(c color.NRGBA) bool { return !nearColor(c, bg) })
	if covered < testWidth*testHeight/10 {
		t.Errorf("only %d pixels differ from the background", covered)
	}
	dark := countPixels(img, func(c color.NRGBA) bool { return c.R < 128 && c.G < 128 && c.B < 128 })
	if dark == 0 {
		t.Error("no edge outline pixels were drawn")
	}
}

func TestSoftwareRendererEmptyFrameIsBackground(t *testing.T) {
	d := room.DefaultDimensions
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	objs := roomObjects(t, d)
	for _, o := range objs {
		o.SetEnabled(false)
	}
	if err := r.Sync(1, objs); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := r.Render(FrameView{Camera: placedCamera(t, d, room.ViewCorner)}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	bg := backgroundNRGBA()
	if n := countPixels(r.Image(), func(c color.NRGBA) bool { return !nearColor(c, bg) }); n != 0 {
		t.Errorf("%d pixels drawn with every node disabled", n)
	}
}

func TestSyncUploadsOnlyOnVersionChange(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()
	impl := r.(*renderer)
	objs := roomObjects(t, room.DefaultDimensions)

	steps := []struct {
		version uint64
		want    int
	}{
		{3, 1},
		{3, 1},
		{4, 2},
		{4, 2},
		{3, 3},
	}
	for _, s := range steps {
		if err := r.Sync(s.version, objs); err != nil {
			t.Fatalf("Sync(%d): %v", s.version, err)
		}
		if impl.uploads != s.want {
			t.Fatalf("after Sync(%d) uploads = %d, want %d", s.version, impl.uploads, s.want)
		}
	}
}

func TestSyncRejectsUnknownPipeline(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	objs := roomObjects(t, room.DefaultDimensions)
	objs[0] = game_object.NewGameObject(
		game_object.WithModel(objs[0].Model()),
		game_object.WithMaterial(material.NewMaterial(material.WithPipelineKey("glass"))),
	)
	if err := r.Sync(1, objs); err == nil {
		t.Fatal("expected an error for an unregistered pipeline key")
	}
}

func TestSyncRejectsTopologyMismatch(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	objs := roomObjects(t, room.DefaultDimensions)
	objs[1] = game_object.NewGameObject(
		game_object.WithModel(objs[1].Model()),
		game_object.WithMaterial(material.ForRole(room.RoleFloor)),
	)
	if err := r.Sync(1, objs); err == nil {
		t.Fatal("expected an error for a line model on the surface pipeline")
	}
}

func TestDrawNeedsCamera(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()
	if err := r.Render(FrameView{}); err == nil {
		t.Fatal("expected an error for a frame view without a camera")
	}
}

func TestResizeIgnoresEmptySize(t *testing.T) {
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight))
	defer r.Release()

	r.Resize(0, 0)
	if w, h := r.Size(); w != testWidth || h != testHeight {
		t.Fatalf("Size() after Resize(0,0) = %dx%d", w, h)
	}
	r.Resize(40, 30)
	if err := r.Render(FrameView{Camera: placedCamera(t, room.DefaultDimensions, room.ViewTop)}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := r.Image().Bounds().Size(); got.X != 40 || got.Y != 30 {
		t.Fatalf("image size after resize = %v", got)
	}
}

func TestSupersampledFrameKeepsOutputSize(t *testing.T) {
	d := room.DefaultDimensions
	r := NewRenderer(BackendTypeSoftware, nil, WithSize(testWidth, testHeight), WithSupersampling(3))
	defer r.Release()

	if err := r.Sync(1, roomObjects(t, d)); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := r.Render(FrameView{Camera: placedCamera(t, d, room.ViewCorner), Lights: light.DefaultRig()}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := r.Image()
	if got := img.Bounds().Size(); got.X != testWidth || got.Y != testHeight {
		t.Fatalf("image size = %v, want %dx%d", got, testWidth, testHeight)
	}
	bg := backgroundNRGBA()
	if n := countPixels(img, func(c color.NRGBA) bool { return !nearColor(c, bg) }); n < testWidth*testHeight/10 {
		t.Errorf("only %d pixels differ from the background", n)
	}
}
