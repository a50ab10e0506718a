package communication

import (
	"context"
	"fmt"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
	"time"
)

type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewRabbitMQ constructor for RabbitMQ. This function returns a RabbitMQ
// with connections already established.
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	return &RabbitMQ{
		connection: connection,
		channel:    channel,
	}, nil
}

// DeclareNonAnonymousQueues declares the named queues in which reports are published.
// Queues without a name are rejected, the broker would otherwise generate one
func (r *RabbitMQ) DeclareNonAnonymousQueues(queuesConfig []QueueDeclarationConfig) error {
	for _, queueConfig := range queuesConfig {
		if queueConfig.Name == "" {
			return fmt.Errorf("error declaring queue: queue name is empty")
		}

		queue, err := r.channel.QueueDeclare(
			queueConfig.Name,
			queueConfig.Durable,
			queueConfig.DeleteWhenUnused,
			queueConfig.Exclusive,
			queueConfig.NoWait,
			nil,
		)
		if err != nil {
			return fmt.Errorf("error declaring queue %s: %w", queueConfig.Name, err)
		}

		log.Debugf("[component: rabbitmq][queue: %s][status: OK] declared with %v pending messages", queue.Name, queue.Messages)
	}
	return nil
}

// PublishMessageInQueue publishes a persistent message in the given queue through the default
// exchange. The publish is abandoned when ctx is done
func (r *RabbitMQ) PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error {
	err := r.channel.PublishWithContext(ctx,
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentType,
			Timestamp:    time.Now().UTC(),
			Body:         message,
		},
	)
	if err != nil {
		return fmt.Errorf("error publishing %v bytes in queue %s: %w", len(message), queueName, err)
	}
	return nil
}

// KillBadBunny closes the channel and then the connection. The connection is closed even if
// closing the channel fails
func (r *RabbitMQ) KillBadBunny() error {
	channelErr := r.channel.Close()
	connectionErr := r.connection.Close()

	if channelErr != nil {
		return fmt.Errorf("error closing RabbitMQ channel: %w", channelErr)
	}

	if connectionErr != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", connectionErr)
	}

	return nil
}
