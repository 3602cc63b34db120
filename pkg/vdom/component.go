package vdom

// Component is the classful component contract. Render receives the
// instance's props, state, and context and returns the rendered child:
// a *VNode, a primitive, or a sequence of such items.
type Component interface {
	Render(props Props, state State, ctx Context) any
}

// WillMounter is implemented by components that want a pre-mount hook.
// The renderer calls WillMount exactly once, after construction and before
// Render. State changes made here are visible to Render but never trigger
// a second render pass.
type WillMounter interface {
	WillMount()
}

// ChildContextProvider is implemented by components that extend the context
// seen by their descendants. The returned mapping is merged over the
// inherited context for the subtree only; siblings keep the parent's view.
type ChildContextProvider interface {
	ChildContext() Context
}

// RenderFunc is a functional component: invoked with (props, context), the
// return value is the rendered child.
type RenderFunc func(props Props, ctx Context) any

// Constructor builds a fresh classful component instance. Instances live
// only for the duration of their subtree's emission.
type Constructor func() Component

// ComponentType is the resolved descriptor of a component node. Exactly one
// of Func and New is set; the renderer branches on which.
type ComponentType struct {
	// Name is the display name, used by shallow rendering and error
	// reporting. Empty falls back to "Component".
	Name string

	// Defaults are merged under a node's attributes so explicit props win.
	Defaults Props

	// Func is set for functional components.
	Func RenderFunc

	// New is set for classful components.
	New Constructor
}

// DisplayName returns the component's name, or "Component" if unnamed.
func (t *ComponentType) DisplayName() string {
	if t != nil && t.Name != "" {
		return t.Name
	}
	return "Component"
}

// Base provides the instance slots of a classful component: props, state,
// and context, plus the imperative update surface. Embed it in component
// structs. During server rendering the instance is render-locked:
// SetState merges synchronously and ForceUpdate returns without scheduling
// anything, so no component can cause itself to re-render.
type Base struct {
	props  Props
	state  State
	ctx    Context
	locked bool
}

// BeginRender installs props and context on the instance and locks
// imperative updates. It is called by the renderer before any lifecycle
// method runs; application code should not call it.
func (b *Base) BeginRender(props Props, ctx Context) {
	b.props = props
	b.ctx = ctx
	b.locked = true
	if b.state == nil {
		b.state = State{}
	}
}

// EndRender releases the instance after its subtree has been emitted.
func (b *Base) EndRender() {
	b.locked = false
}

// RenderState returns the state mapping as Render will see it, including
// any merges performed during WillMount.
func (b *Base) RenderState() State {
	if b.state == nil {
		b.state = State{}
	}
	return b.state
}

// Props returns the props installed for the current render.
func (b *Base) Props() Props { return b.props }

// Ctx returns the context installed for the current render.
func (b *Base) Ctx() Context { return b.ctx }

// SetState merges partial into the instance state. Under the render lock
// the merge is synchronous and nothing is scheduled; the updated state is
// what Render observes.
func (b *Base) SetState(partial State) {
	if b.state == nil {
		b.state = State{}
	}
	for k, v := range partial {
		b.state[k] = v
	}
}

// ForceUpdate requests a re-render. Under the render lock this is a no-op:
// the single render pass already reflects current state.
func (b *Base) ForceUpdate() {}
