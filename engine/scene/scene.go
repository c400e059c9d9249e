package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/game_object"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

// ErrReleased is returned by Apply after the scene has been released.
var ErrReleased = errors.New("scene released")

// Scene holds the renderable nodes of one room together with its light rig.
// Room content is only ever replaced as a whole through Apply, so readers see
// either the complete previous room or the complete new one.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Apply replaces the scene content with one surface node and one outline node per
	// surface. Nodes are tessellated in parallel and swapped in only after every node
	// has been built; on error the previous content and Version are left untouched.
	//
	// Parameters:
	//   - surfaces: the room surfaces, normally the result of room.Build
	//
	// Returns:
	//   - error: ErrReleased, or a joined error of every surface that failed to tessellate
	Apply(surfaces []room.Surface) error

	// Children returns a snapshot of the current nodes: all surface nodes in input
	// order followed by all outline nodes in input order.
	//
	// Returns:
	//   - []game_object.GameObject: the current nodes
	Children() []game_object.GameObject

	// Get retrieves a node by its ID. Returns nil if not found.
	//
	// Parameters:
	//   - id: the node's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the node or nil
	Get(id uint64) game_object.GameObject

	// Count returns the number of nodes in the scene.
	//
	// Returns:
	//   - int: the node count
	Count() int

	// CountKind returns the number of nodes of one kind.
	//
	// Parameters:
	//   - kind: surface or outline
	//
	// Returns:
	//   - int: the node count for that kind
	CountKind(kind game_object.Kind) int

	// Version returns a counter that increases every time the content changes.
	// Renderers compare it to decide whether to re-upload geometry.
	//
	// Returns:
	//   - uint64: the content version
	Version() uint64

	// Lights returns the scene's light rig.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light

	// Clear removes all nodes from the scene.
	Clear()

	// Release stops the tessellation workers. Apply fails with ErrReleased afterwards.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	children []game_object.GameObject
	registry map[uint64]game_object.GameObject
	version  uint64
	nextID   atomic.Uint64
	lights   []light.Light
	released bool

	// computePool runs the per-node tessellation of Apply. Workers persist across
	// rebuilds so a slider drag does not spawn goroutines per change.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, empty Scene lit by light.DefaultRig unless WithLights overrides it.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		registry:       make(map[uint64]game_object.GameObject),
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}
	s.nextID.Store(1)

	for _, option := range options {
		option(s)
	}
	if s.lights == nil {
		s.lights = light.DefaultRig()
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	// A full room is twelve tasks, the queue leaves room for back-to-back rebuilds.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Apply(surfaces []room.Surface) error {
	s.mu.RLock()
	released, name := s.released, s.name
	s.mu.RUnlock()
	if released {
		return fmt.Errorf("scene %q: apply: %w", name, ErrReleased)
	}

	n := len(surfaces)
	nodes := make([]game_object.GameObject, 2*n)
	errs := make([]error, 2*n)

	// Each task writes only its own slot; the WaitGroup is the barrier before the swap.
	var wg sync.WaitGroup
	for i := range 2 * n {
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				kind := game_object.KindSurface
				if i >= n {
					kind = game_object.KindOutline
				}
				nodes[i], errs[i] = s.buildNode(surfaces[i%n], kind)
				return nil, errs[i]
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scene %q: apply: %w", name, err)
	}

	registry := make(map[uint64]game_object.GameObject, len(nodes))
	for _, node := range nodes {
		registry[node.ID()] = node
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = nodes
	s.registry = registry
	s.version++
	return nil
}

// buildNode tessellates one surface or outline into a node. Safe to call concurrently.
func (s *scene) buildNode(surf room.Surface, kind game_object.Kind) (game_object.GameObject, error) {
	var (
		mdl model.Model
		mat material.Material
		err error
	)
	switch kind {
	case game_object.KindOutline:
		mat = material.Edge()
		mdl, err = model.OutlineFromSurface(surf, mat.BaseColor())
	default:
		mat = material.ForRole(surf.Role)
		mdl, err = model.FromSurface(surf, mat.BaseColor())
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", surf.Role, kind, err)
	}
	return game_object.NewGameObject(
		game_object.WithID(s.nextID.Add(1)-1),
		game_object.WithKind(kind),
		game_object.WithSurface(surf),
		game_object.WithModel(mdl),
		game_object.WithMaterial(mat),
	), nil
}

func (s *scene) Children() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, len(s.children))
	copy(out, s.children)
	return out
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.children)
}

func (s *scene) CountKind(kind game_object.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.children {
		if c.Kind() == kind {
			count++
		}
	}
	return count
}

func (s *scene) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lights
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = nil
	s.registry = make(map[uint64]game_object.GameObject)
	s.version++
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.computePool.Stop()
}
