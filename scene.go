package scratchfx

// Scene is the authoritative collection of live Renderables for one Canvas.
// Objects render in insertion order, so later additions draw on top.
//
// Objects may add or remove themselves (or others) while a render pass is in
// progress (TimeLimited does exactly that), so Render iterates a snapshot of
// the object list taken at the start of the pass and skips entries removed
// mid-pass. Objects added mid-pass first render on the next pass.
type Scene struct {
	canvas   Canvas
	objects  []Renderable
	index    map[Renderable]struct{}
	snapshot []Renderable // reused across passes
}

// NewScene creates an empty Scene drawing onto canvas.
func NewScene(canvas Canvas) *Scene {
	return &Scene{
		canvas: canvas,
		index:  make(map[Renderable]struct{}),
	}
}

// Canvas returns the canvas the scene renders onto.
func (s *Scene) Canvas() Canvas {
	return s.canvas
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// AddObject registers o for rendering. Adding an object that is already
// present is a no-op: an object is live at most once.
func (s *Scene) AddObject(o Renderable) *Scene {
	if _, ok := s.index[o]; ok {
		return s
	}
	s.index[o] = struct{}{}
	s.objects = append(s.objects, o)
	return s
}

// RemoveObject deregisters o. Removing an absent object is a silent no-op, so
// duplicate cleanup (a lifetime decorator firing after a manual removal) never
// fails.
func (s *Scene) RemoveObject(o Renderable) *Scene {
	if _, ok := s.index[o]; !ok {
		return s
	}
	delete(s.index, o)
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	return s
}

// Render clears the canvas once, then renders every object that was live at
// the start of the pass and still is when its turn comes, in insertion order.
func (s *Scene) Render() *Scene {
	s.canvas.Clear()
	s.snapshot = append(s.snapshot[:0], s.objects...)
	for _, o := range s.snapshot {
		if _, live := s.index[o]; !live {
			continue
		}
		o.Render(s.canvas)
	}
	return s
}
