package cmd

import (
	"fmt"
	"log/slog"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/memstore"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"
)

// CompositionRoot wires the storage backend, use case handlers, HTTP server,
// and background jobs from the configuration.
type CompositionRoot struct {
	config  Config
	variant order.Variant
	orders  ports.OrderRepository
	logger  *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured storage
// backend and order variant.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	variant, err := parseVariant(config.OrderVariant)
	if err != nil {
		return nil, err
	}

	orders, err := createRepository(config, variant, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:  config,
		variant: variant,
		orders:  orders,
		logger:  logger,
	}, nil
}

// OrderRepository returns the configured repository.
func (c *CompositionRoot) OrderRepository() ports.OrderRepository {
	return c.orders
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.variant)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orders, c.variant)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orders)
}

// CreateHTTPServer builds the HTTP server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orders, c.variant,
		c.config.ReportSchedule, c.config.ReportMaxAgeDays, c.logger)
}

func parseVariant(name string) (order.Variant, error) {
	switch name {
	case "", "purchase":
		return order.Purchase, nil
	case "sales":
		return order.Sales, nil
	default:
		return order.Purchase, fmt.Errorf("unknown order variant %q", name)
	}
}

func createRepository(config Config, variant order.Variant, logger *slog.Logger) (ports.OrderRepository, error) {
	reconciler := services.NewLifecycleReconciler()

	switch config.StorageBackend {
	case "", StorageBackendMemory:
		snapshots := memstore.NewFileSnapshotStore(config.SnapshotPath)
		return memstore.NewRepository(variant, snapshots, reconciler, logger)

	case StorageBackendPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
			config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		repo, err := orderrepo.NewGormOrderRepository(db, variant, reconciler)
		if err != nil {
			return nil, err
		}
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate orders schema: %w", err)
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}
