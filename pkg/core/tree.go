package core

// ViewTree is the state carried through one build of a content view. It
// issues identities, stores handler maps in the registry and remembers the
// most recent container so leaf views can attach layout constraints to
// their logical parent.
//
// A ViewTree is used from the UI thread only and is discarded once the
// build completes; the registry and dispatcher outlive it.
type ViewTree[S any] struct {
	ids        IDGenerator
	registry   *Registry[S]
	dispatcher EventDispatcher
	parent     ViewID
}

// NewViewTree creates a builder storing handlers in registry. The dispatcher
// is handed to native event sources created during the build.
func NewViewTree[S any](registry *Registry[S], dispatcher EventDispatcher) *ViewTree[S] {
	return &ViewTree[S]{
		registry:   registry,
		dispatcher: dispatcher,
	}
}

// NextID issues a fresh identity without registering handlers for it.
func (t *ViewTree[S]) NextID() ViewID {
	return t.ids.Next()
}

// ExchangeEventsForID allocates the next identity and stores m under it.
// Callers pass a map obtained with HandlerMap.Take.
func (t *ViewTree[S]) ExchangeEventsForID(m HandlerMap[S]) ViewID {
	id := t.ids.Next()
	t.registry.Insert(id, m)
	return id
}

// PutEventHandlersWithID stores m under an identity issued earlier by
// NextID. Backends that must know a control's identity before creating it
// use this form.
func (t *ViewTree[S]) PutEventHandlersWithID(id ViewID, m HandlerMap[S]) ViewID {
	t.registry.Insert(id, m)
	return id
}

// ParentID returns the identity of the most recent container.
func (t *ViewTree[S]) ParentID() (ViewID, bool) {
	return t.parent, t.parent != NoView
}

// SetParentID records id as the current container.
func (t *ViewTree[S]) SetParentID(id ViewID) {
	t.parent = id
}

// Dispatcher returns the dispatcher native event sources report to.
func (t *ViewTree[S]) Dispatcher() EventDispatcher {
	return t.dispatcher
}

// Registry returns the handler registry the tree writes to.
func (t *ViewTree[S]) Registry() *Registry[S] {
	return t.registry
}

// Issued returns how many identities the tree has handed out.
func (t *ViewTree[S]) Issued() int {
	return t.ids.Issued()
}
