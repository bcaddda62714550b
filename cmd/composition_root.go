package cmd

import (
	"log/slog"
	"os"
	"strings"

	"grocery/internal/adapters/out/kafkanotify"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/riderdir"
	"grocery/internal/adapters/out/redisstore"
	"grocery/internal/adapters/out/stripepay"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/pkg/secrets"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	gateway          *stripepay.Gateway
	publisher        *kafkanotify.Publisher
	idempotencyStore *redisstore.IdempotencyStore
	riderDirectory   *riderdir.GormRiderDirectory
	encryptor        *secrets.AESEncryptor

	currency string
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	encryptor, err := secrets.NewAESEncryptor([]byte(config.CardEncryptionKey))
	if err != nil {
		return CompositionRoot{}, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),

		gateway:          stripepay.NewGateway(config.StripeSecretKey),
		publisher:        kafkanotify.NewPublisher(strings.Split(config.KafkaHost, ","), config.KafkaNotificationsTopic),
		idempotencyStore: redisstore.NewIdempotencyStore(redisClient),
		riderDirectory:   riderdir.NewGormRiderDirectory(gormDB),
		encryptor:        encryptor,

		currency: config.Currency,
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveApplicationCommandHandler() commands.ApproveApplicationCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectApplicationCommandHandler() commands.RejectApplicationCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateResubmitApplicationCommandHandler() commands.ResubmitApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResubmitApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.gateway, c.idempotencyStore, c.currency)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.riderDirectory)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPaymentMethodCommandHandler() commands.AddPaymentMethodCommandHandler {
	var f commands.PaymentMethodUoWFactory = FuncPaymentMethodUoWFactory(func() commands.PaymentMethodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPaymentMethodCommandHandler(f, c.gateway, c.encryptor)
}

func (c *CompositionRoot) CreateSetDefaultPaymentMethodCommandHandler() commands.SetDefaultPaymentMethodCommandHandler {
	var f commands.PaymentMethodUoWFactory = FuncPaymentMethodUoWFactory(func() commands.PaymentMethodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDefaultPaymentMethodCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetApplicationQueryHandler() queries.GetApplicationQueryHandler {
	return queries.NewGetApplicationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetApplicationsByStatusQueryHandler() queries.GetApplicationsByStatusQueryHandler {
	return queries.NewGetApplicationsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentMethodUoWFactory func() commands.PaymentMethodUoW

func (f FuncPaymentMethodUoWFactory) Create() commands.PaymentMethodUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
