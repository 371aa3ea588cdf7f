package api

import (
	"github.com/promptlab/promptlab/internal/collections"
	"github.com/promptlab/promptlab/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts     prompts.System
	Collections collections.System
}

// NewDomain creates all domain systems from the API runtime. Both systems
// share the runtime store, so collection deletes unlink prompts in place.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Prompts:     prompts.New(runtime.Store, runtime.Logger),
		Collections: collections.New(runtime.Store, runtime.Logger),
	}
}
