// Package events carries mutation notifications out of the core. The
// original surface exposed toast triggers as ambient globals; here the core
// emits explicit events and the caller decides what, if anything, to show.
package events

// Kind identifies what happened.
type Kind string

const (
	FolderCreated     Kind = "folder.created"
	FolderRenamed     Kind = "folder.renamed"
	FolderDeleted     Kind = "folder.deleted"
	DocumentsImported Kind = "documents.imported"
	DocumentUpdated   Kind = "document.updated"
	DocumentDeleted   Kind = "document.deleted"
	BackupRestored    Kind = "backup.restored"
)

// Event is one mutation notification.
type Event struct {
	Kind Kind `json:"kind"`

	// Path is the folder or document path involved, when there is one
	Path string `json:"path,omitempty"`

	// Count is how many records a cascading operation touched
	Count int `json:"count,omitempty"`

	// Message is a human-readable summary
	Message string `json:"message,omitempty"`
}

// Handler receives events. Dispatch is synchronous: the core is
// single-writer and every mutation runs to completion before the next.
type Handler func(Event)

// Emitter fans events out to subscribed handlers.
type Emitter struct {
	handlers []Handler
}

// NewEmitter creates an emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Subscribe registers a handler for all subsequent events.
func (e *Emitter) Subscribe(h Handler) {
	e.handlers = append(e.handlers, h)
}

// Emit delivers the event to every subscriber in subscription order.
func (e *Emitter) Emit(ev Event) {
	for _, h := range e.handlers {
		h(ev)
	}
}
