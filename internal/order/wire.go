package order

import (
	"go.uber.org/zap"

	"driwich/internal/order/controller"
	"driwich/internal/order/repository"
	"driwich/internal/order/service"
	"driwich/internal/order/usecase"
)

type Recorder interface {
	usecase.Recorder
	service.Recorder
}

type Module struct {
	Orders    *controller.OrderController
	Selection *controller.SelectionController
}

func NewModule(
	products usecase.ProductLookup,
	dispatcher service.Dispatcher,
	formatter service.Formatter,
	notifier usecase.Notifier,
	recorder Recorder,
	logger *zap.Logger,
) *Module {
	orderRepo := repository.NewMemoryOrderRepository()
	selectionRepo := repository.NewMemorySelectionRepository()

	tickets := service.NewTicketService(dispatcher, formatter, notifier, recorder, logger)

	orderUC := usecase.NewOrderUseCase(orderRepo, selectionRepo, tickets, notifier, recorder, logger)
	selectionUC := usecase.NewSelectionUseCase(selectionRepo, products, logger)

	return &Module{
		Orders:    controller.NewOrderController(orderUC, logger),
		Selection: controller.NewSelectionController(selectionUC, logger),
	}
}
