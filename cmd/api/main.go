package main

import (
	"context"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/aws"
	"github.com/masalabox/orderflow/internal/config"
	"github.com/masalabox/orderflow/internal/contact"
	"github.com/masalabox/orderflow/internal/coupons"
	"github.com/masalabox/orderflow/internal/events"
	"github.com/masalabox/orderflow/internal/handlers"
	"github.com/masalabox/orderflow/internal/metrics"
	"github.com/masalabox/orderflow/internal/notify"
	"github.com/masalabox/orderflow/internal/orders"
	"github.com/masalabox/orderflow/internal/payments"
	"github.com/masalabox/orderflow/internal/products"
	"github.com/masalabox/orderflow/internal/users"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init aws clients")
	}

	couponsStore := coupons.NewStore(clients.DynamoDB, cfg.CouponsTable)

	hcfg := handlers.HandlerConfig{
		Coupons:      coupons.NewService(couponsStore),
		CouponsStore: couponsStore,
		Orders:       orders.NewStore(clients.DynamoDB, cfg.OrdersTable),
		Users:        users.NewService(users.NewStore(clients.DynamoDB, cfg.UsersTable), notify.LogSender{}),
		Products:     products.NewStore(clients.DynamoDB, cfg.ProductsTable),
		Contact:      contact.NewStore(clients.DynamoDB, cfg.ContactTable),
		Gateway:      payments.NewClient(cfg.Razorpay),
		Publisher:    events.NewPublisher(clients.SQS, cfg.OrderEventsQueueURL),
		Metrics:      metrics.NewRecorder(clients.CloudWatch, cfg.MetricsNamespace),
	}

	r := setupRouter(hcfg)

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if cfg.RunLocal {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("running local server")
		if err := r.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to run local server")
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req lambdaevents.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
