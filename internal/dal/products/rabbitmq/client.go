package productsrabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/productsapp/orders-svc/internal/dal/rabbitmq"
	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/product"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
)

const cmdValidateProducts = "validateProducts"

// Client is the products service client. Validate performs one batched
// request/reply round-trip over RabbitMQ per call: a request queue on the
// products side, an exclusive reply queue on ours, matched by correlation id.
type Client struct {
	rabbit  *rabbitmq.Client
	queue   string
	timeout time.Duration
}

// MustNewClient creates a products client and declares the request queue.
func MustNewClient(rabbit *rabbitmq.Client) *Client {
	queueName := viper.GetString("rabbitmq.products.queue")
	if queueName == "" {
		queueName = "products.validate"
	}

	timeoutSeconds := viper.GetInt("rabbitmq.products.validate_timeout_seconds")
	if timeoutSeconds == 0 {
		timeoutSeconds = 5
	}

	if _, err := rabbit.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:    queueName,
		Durable: true,
	}); err != nil {
		panic(fmt.Sprintf("Failed to declare products queue: %v", err))
	}

	return &Client{
		rabbit:  rabbit,
		queue:   queueName,
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// validateRequest is the command envelope sent to the products service.
type validateRequest struct {
	Cmd  string  `json:"cmd"`
	Data []int64 `json:"data"`
}

// validateReply is the reply envelope: either a product list or a remote
// business error.
type validateReply struct {
	Products []product.Record `json:"products"`
	Error    *errs.Error      `json:"error,omitempty"`
}

// Validate sends the batched product ids to the products service and blocks
// until the matching reply arrives or the per-call deadline expires. Transport
// failures, remote errors and malformed records all surface as an error;
// nothing is retried and nothing is cached.
func (c *Client) Validate(ctx context.Context, productIDs []int64) ([]product.Product, error) {
	ctx, span := otel.Tracer("products-client").Start(ctx, "ProductsClient.Validate")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// A dedicated channel per call keeps concurrent requests from sharing
	// consumer state.
	channel, err := c.rabbit.Connection().Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	replyQueue, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare reply queue: %w", err)
	}

	replies, err := channel.Consume(replyQueue.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume reply queue: %w", err)
	}

	body, err := json.Marshal(validateRequest{
		Cmd:  cmdValidateProducts,
		Data: productIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validate request: %w", err)
	}

	correlationID := uuid.NewString()
	err = channel.Publish("", c.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: correlationID,
		ReplyTo:       replyQueue.Name,
		Body:          body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish validate request: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("product validation did not complete: %w", ctx.Err())
		case msg, ok := <-replies:
			if !ok {
				return nil, fmt.Errorf("reply channel closed before response")
			}
			if msg.CorrelationId != correlationID {
				continue
			}

			return decodeReply(msg.Body)
		}
	}
}

// decodeReply parses a validation reply. Remote-reported errors and records
// with missing fields fail the whole call.
func decodeReply(body []byte) ([]product.Product, error) {
	var reply validateReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validate reply: %w", err)
	}

	if reply.Error != nil {
		return nil, reply.Error
	}

	products := make([]product.Product, 0, len(reply.Products))
	for _, record := range reply.Products {
		p, err := record.ToProduct()
		if err != nil {
			return nil, fmt.Errorf("malformed validate reply: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}
