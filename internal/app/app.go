package app

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"gllights/internal/camera"
	"gllights/internal/config"
	"gllights/internal/graphics"
	renderer "gllights/internal/graphics/renderer"
	"gllights/internal/graphics/renderables/lit"
	"gllights/internal/graphics/renderables/marker"
	"gllights/internal/input"
	"gllights/internal/profiling"
	"gllights/internal/scene"
	"gllights/internal/window"

	"github.com/go-gl/mathgl/mgl32"
)

// App owns every piece of demo state. All methods must run on the thread
// that called New.
type App struct {
	settings config.Settings

	window       *window.Window
	inputManager *input.InputManager
	camera       *camera.Camera
	light        *scene.Light
	renderer     *renderer.Renderer

	cube     graphics.Geometry
	textures []graphics.Texture

	lastTime   float64
	frames     int
	lastFPSLog float64

	closeRequested atomic.Bool
	closeOnce      sync.Once
}

// New runs the whole initialization phase: window, GPU resources, programs
// and scene state. Anything created before a failure is released again.
func New(s config.Settings) (*App, error) {
	a := &App{
		settings:     s,
		inputManager: input.NewInputManager(),
		camera:       camera.New(s.Camera),
		light:        scene.NewLight(s.Light),
	}

	w, err := window.Create(s.Window)
	if err != nil {
		return nil, err
	}
	a.window = w

	if err := a.loadScene(); err != nil {
		a.Close()
		return nil, err
	}

	a.lastTime = a.window.ElapsedTime()
	a.lastFPSLog = a.lastTime
	return a, nil
}

func (a *App) loadScene() error {
	assets := a.settings.Assets

	a.cube = graphics.BuildCube()

	objectTex, err := graphics.LoadTexture(assets.ObjectTexture)
	if err != nil {
		return err
	}
	a.textures = append(a.textures, objectTex)

	markerTex, err := graphics.LoadTexture(assets.MarkerTexture)
	if err != nil {
		return err
	}
	a.textures = append(a.textures, markerTex)

	white := mgl32.Vec3{1, 1, 1}
	cubeObj := graphics.NewObject(a.cube, graphics.Material{Tint: white, Texture: objectTex})
	lightObj := graphics.NewObject(a.cube, graphics.Material{Tint: white, Texture: markerTex})

	r, err := renderer.NewRenderer(
		mgl32.Vec3(a.settings.Frame.ClearColour),
		lit.NewLit(cubeObj, assets.LitVertex, assets.LitFragment, lit.Shading{
			Ambient:   a.settings.Light.Ambient,
			Specular:  a.settings.Light.Specular,
			Shininess: a.settings.Light.Shininess,
		}),
		marker.NewMarker(lightObj, assets.MarkerVertex, assets.MarkerFragment, a.settings.Light.MarkerScale),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	a.renderer = r
	return nil
}

// Run drives the frame loop until the window asks to close or RequestClose
// is called.
func (a *App) Run() {
	for !a.shouldStop() {
		a.tick()
	}
}

func (a *App) shouldStop() bool {
	return a.closeRequested.Load() || a.window.ShouldClose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	now := a.window.ElapsedTime()
	dt := float32(now - a.lastTime)
	a.lastTime = now

	a.renderer.SetViewport(a.window.Size())
	a.renderer.Clear()
	a.render()

	func() { defer profiling.Track("frame.input")(); a.handleInput(dt) }()
	func() { defer profiling.Track("frame.update")(); a.update() }()
	func() { defer profiling.Track("frame.present")(); a.window.PollAndPresent() }()

	a.logFrameStats(now, time.Since(start))
}

func (a *App) render() {
	ctx := renderer.RenderContext{
		View:  a.camera.ViewMatrix(),
		Proj:  a.camera.ProjectionMatrix(a.window.AspectRatio()),
		Light: a.light,
	}
	a.renderer.Render(ctx)
}

func (a *App) handleInput(dt float32) {
	a.inputManager.Poll(a.window)
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	// Always drain the delta so a click does not replay movement made while
	// the button was up.
	dx, dy := a.window.CursorDelta()
	a.inputManager.Steer(a.camera, dt, dx, dy, a.settings.Controls)
}

func (a *App) update() {
	a.light.Update(a.window.ElapsedTime())
}

func (a *App) logFrameStats(now float64, frameDur time.Duration) {
	a.frames++
	if now-a.lastFPSLog >= 1 {
		log.Printf("FPS: %d", a.frames)
		a.frames = 0
		a.lastFPSLog = now
	}

	budget := time.Duration(a.settings.Frame.SlowFrameMs * float64(time.Millisecond))
	if budget > 0 && frameDur > budget {
		log.Printf("Slow frame: %v. Top phases: %s", frameDur, profiling.TopN(3))
	}
}

// RequestClose asks the frame loop to stop after the current frame. It may be
// called from any goroutine; it never touches the window.
func (a *App) RequestClose() {
	a.closeRequested.Store(true)
}

// Close releases GPU resources and then the window. It is safe to call more
// than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.renderer != nil {
			a.renderer.Dispose()
		}
		for i := range a.textures {
			a.textures[i].Delete()
		}
		a.cube.Delete()
		if a.window != nil {
			a.window.Terminate()
		}
	})
}
