// Package backbuffer adapts a gogpu GPU context as the renderer behind
// liveresize.
//
// A Backbuffer owns one GPU texture holding the application's frame at
// the fixed virtual resolution and presents it letterboxed into the
// window surface. Resizing the output never touches the virtual-size
// texture: only the destination viewport moves, so mid-drag frames cost
// an upload and a draw, not a texture recreation.
//
// The pixel source is external: anything that can fill an RGBA buffer at
// the virtual resolution (a software rasterizer, a readback, a gg
// pixmap) satisfies Source.
package backbuffer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	liveresize "github.com/mmngadi/go-liveresize"
)

// Errors returned by Backbuffer operations.
var (
	// ErrNilProvider is returned when no DeviceProvider is supplied.
	ErrNilProvider = errors.New("backbuffer: nil DeviceProvider")

	// ErrNilSource is returned when no pixel source is supplied.
	ErrNilSource = errors.New("backbuffer: nil Source")

	// ErrClosed is returned for operations on a closed backbuffer.
	ErrClosed = errors.New("backbuffer: closed")
)

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// Source produces one application frame as tightly packed RGBA at the
// virtual resolution. The returned slice is read before the next call.
type Source interface {
	// FramePixels runs one update+draw cycle and returns the frame,
	// len == width*height*4.
	FramePixels(width, height int) []byte
}

// SourceFunc adapts a function to Source.
type SourceFunc func(width, height int) []byte

func (f SourceFunc) FramePixels(width, height int) []byte { return f(width, height) }

// Backbuffer implements liveresize.Renderer on a gpucontext device.
//
// Not safe for concurrent use; like the rest of the resize machinery it
// lives on the render thread.
type Backbuffer struct {
	provider gpucontext.DeviceProvider
	source   Source

	virtualW int
	virtualH int

	outW int // applied output size (the "backbuffer size" the pump reads)
	outH int

	vp liveresize.Viewport

	texture    any // created lazily at first present (*gogpu.Texture)
	oldTexture any // previous texture awaiting deferred destruction
	closed     bool

	frames  int
	resizes int
}

// New creates a backbuffer at the given virtual resolution. The initial
// applied output size matches the virtual resolution until the first
// ResizeBackbuffer request arrives.
func New(provider gpucontext.DeviceProvider, source Source, virtualW, virtualH int) (*Backbuffer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if source == nil {
		return nil, ErrNilSource
	}
	if virtualW <= 0 || virtualH <= 0 {
		return nil, fmt.Errorf("backbuffer: invalid virtual size %dx%d", virtualW, virtualH)
	}
	return &Backbuffer{
		provider: provider,
		source:   source,
		virtualW: virtualW,
		virtualH: virtualH,
		outW:     virtualW,
		outH:     virtualH,
	}, nil
}

// VirtualSize returns the current virtual resolution.
func (b *Backbuffer) VirtualSize() (int, int) { return b.virtualW, b.virtualH }

// SetVirtualSize changes the virtual resolution. The live texture is
// retired and a replacement is created at the new size on the next
// present; the retired texture is destroyed only once the replacement
// is live, so in-flight GPU work never reads a freed texture.
func (b *Backbuffer) SetVirtualSize(width, height int) error {
	if b.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("backbuffer: invalid virtual size %dx%d", width, height)
	}
	if width == b.virtualW && height == b.virtualH {
		return nil
	}
	b.virtualW, b.virtualH = width, height
	if _, pending := b.texture.(*pendingTexture); !pending && b.texture != nil {
		b.oldTexture = b.texture
	}
	b.texture = nil
	return nil
}

// ResizeBackbuffer applies a new output size. The request is treated as
// applied immediately: BackbufferSize reflects it before the next frame.
func (b *Backbuffer) ResizeBackbuffer(width, height int) {
	if width == b.outW && height == b.outH {
		return
	}
	b.outW, b.outH = width, height
	b.resizes++
	liveresize.Logger().Debug("backbuffer resized", "width", width, "height", height)
}

// BackbufferSize returns the applied output size.
func (b *Backbuffer) BackbufferSize() (int, int) { return b.outW, b.outH }

// SetViewport stores the letterboxed destination for the next present.
func (b *Backbuffer) SetViewport(vp liveresize.Viewport) { b.vp = vp }

// Viewport returns the last viewport handed to SetViewport.
func (b *Backbuffer) Viewport() liveresize.Viewport { return b.vp }

// RenderFrame pulls one frame from the source and uploads it to the GPU
// texture, creating the texture on first use. Presentation to a surface
// happens separately in Present so the pump can drive frames even when
// the host only composites at its own pace.
func (b *Backbuffer) RenderFrame() {
	if b.closed {
		return
	}
	data := b.source.FramePixels(b.virtualW, b.virtualH)
	b.frames++
	if b.texture == nil {
		// Creation is deferred to Present, where a TextureCreator is
		// available; keep the pending pixels.
		b.texture = &pendingTexture{width: b.virtualW, height: b.virtualH, data: data}
		return
	}
	if pending, ok := b.texture.(*pendingTexture); ok {
		pending.data = data
		return
	}
	if updater, ok := b.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			liveresize.Logger().Warn("backbuffer texture update failed", "error", err)
		}
	}
}

// Present draws the current frame into dc at the letterboxed viewport
// origin. On the first present (or after Close/reopen patterns in tests)
// the real GPU texture is created from the pending pixels.
func (b *Backbuffer) Present(dc gpucontext.TextureDrawer) error {
	if b.closed {
		return ErrClosed
	}
	if b.texture == nil {
		// No frame rendered yet; nothing to present.
		return nil
	}

	if pending, ok := b.texture.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return errors.New("backbuffer: draw context has no TextureCreator")
		}
		tex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("backbuffer: NewTextureFromRGBA failed: %w", err)
		}
		b.texture = tex

		// The old texture (from a prior generation) is safe to destroy
		// only now: NewTextureFromRGBA waits for the GPU internally, so
		// no in-flight command buffer still references it.
		if b.oldTexture != nil {
			if destroyer, ok := b.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			b.oldTexture = nil
		}
	}

	tex, ok := b.texture.(gpucontext.Texture)
	if !ok {
		return errors.New("backbuffer: render a frame before presenting")
	}
	return dc.DrawTexture(tex, float32(b.vp.X), float32(b.vp.Y))
}

// SurfaceFormat reports the host surface format, for callers that need to
// match swapchain formats.
func (b *Backbuffer) SurfaceFormat() gputypes.TextureFormat {
	if b.provider == nil {
		return gputypes.TextureFormatUndefined
	}
	return b.provider.SurfaceFormat()
}

// FrameCount returns the number of frames rendered since creation.
func (b *Backbuffer) FrameCount() int { return b.frames }

// ResizeCount returns the number of applied output-size changes.
func (b *Backbuffer) ResizeCount() int { return b.resizes }

// Close releases the GPU texture. Idempotent.
func (b *Backbuffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.oldTexture != nil {
		if destroyer, ok := b.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		b.oldTexture = nil
	}
	if destroyer, ok := b.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	b.texture = nil
	b.provider = nil
	return nil
}

// pendingTexture holds frame pixels until a TextureCreator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

var _ liveresize.Renderer = (*Backbuffer)(nil)
