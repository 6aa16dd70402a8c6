package services

import (
	"time"

	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A nil clock means wall-clock time.
func NewServiceContainer(repos portsrepo.RepositoryProvider, artifacts portsrepo.ArtifactStore, clock func() time.Time) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.SalesNote = NewSalesNoteService(
		repos.SalesNoteRepo,
		repos.CustomerRepo,
		repos.ProductRepo,
		WithSalesNoteClock(clock),
	)

	// the renderer loads notes through the lifecycle service
	container.Document = NewDocumentService(
		container.SalesNote,
		repos.SalesNoteRepo,
		repos.CustomerRepo,
		repos.ProductRepo,
		artifacts,
		WithDocumentClock(clock),
	)

	return container
}
