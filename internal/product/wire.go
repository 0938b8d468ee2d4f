package product

import (
	"go.uber.org/zap"
)

// NewModule builds the catalog and its HTTP controller. The catalog is
// empty until Reload is called.
func NewModule(repo Repository, notifier Notifier, recorder Recorder, logger *zap.Logger) (*Catalog, *Controller) {
	catalog := NewCatalog(repo, notifier, recorder, logger)
	return catalog, NewController(catalog, logger)
}
