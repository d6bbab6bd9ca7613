package interaction

import "github.com/alexanderramin/timeline/internal/domain"

// Registry keeps one Controller per item, created on first use.
type Registry struct {
	pointer     *Pointer
	update      UpdateFunc
	controllers map[string]*Controller
}

func NewRegistry(pointer *Pointer, update UpdateFunc) *Registry {
	return &Registry{
		pointer:     pointer,
		update:      update,
		controllers: make(map[string]*Controller),
	}
}

// Pointer returns the shared pointer the registry's controllers capture.
func (r *Registry) Pointer() *Pointer { return r.pointer }

// For returns the controller for an item id.
func (r *Registry) For(id string) *Controller {
	c, ok := r.controllers[id]
	if !ok {
		c = NewController(id, r.pointer, r.update)
		r.controllers[id] = c
	}
	return c
}

// Prune closes and forgets controllers whose item is not in live.
func (r *Registry) Prune(live []domain.Item) {
	keep := make(map[string]bool, len(live))
	for _, it := range live {
		keep[it.ID] = true
	}
	for id, c := range r.controllers {
		if !keep[id] {
			c.Close()
			delete(r.controllers, id)
		}
	}
}

// Close tears down every controller.
func (r *Registry) Close() {
	for id, c := range r.controllers {
		c.Close()
		delete(r.controllers, id)
	}
}

// Len returns the number of live controllers.
func (r *Registry) Len() int { return len(r.controllers) }
