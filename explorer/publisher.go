package main

import (
	"bikeshare/communication"
	"bikeshare/domain/business/report"
	"context"
	"fmt"
	log "github.com/sirupsen/logrus"
	"time"
)

// Publisher sends the report of every cycle to some consumer outside the explorer
type Publisher interface {
	Publish(ctx context.Context, cycleReport *report.Report) error
	Close() error
}

// NewPublisher returns a RabbitMQ publisher if enabled in the config, otherwise a publisher that does nothing
func NewPublisher(publisherConfig communication.PublisherConfig) (Publisher, error) {
	if !publisherConfig.Enabled {
		return noopPublisher{}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.URL)
	if err != nil {
		return nil, err
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{publisherConfig.OutputQueue})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	log.Infof("[component: publisher][queue: %s][status: OK] queues declared correctly!", publisherConfig.OutputQueue.Name)
	return &rabbitPublisher{
		rabbitMQ: rabbitMQ,
		config:   publisherConfig,
	}, nil
}

// queueChannel broker operations needed to publish reports, implemented by communication.RabbitMQ
type queueChannel interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	KillBadBunny() error
}

type rabbitPublisher struct {
	rabbitMQ queueChannel
	config   communication.PublisherConfig
}

func (rp *rabbitPublisher) Publish(ctx context.Context, cycleReport *report.Report) error {
	reportBytes, err := cycleReport.Marshal()
	if err != nil {
		return err
	}

	if rp.config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(rp.config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	err = rp.rabbitMQ.PublishMessageInQueue(ctx, rp.config.OutputQueue.Name, reportBytes, rp.config.ContentType)
	if err != nil {
		return fmt.Errorf("error publishing report %s: %w", cycleReport.GetMetadata().GetRunID(), err)
	}

	log.Debugf("[component: publisher][queue: %s][run: %s][status: OK] report published", rp.config.OutputQueue.Name, cycleReport.GetMetadata().GetRunID())
	return nil
}

func (rp *rabbitPublisher) Close() error {
	return rp.rabbitMQ.KillBadBunny()
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, *report.Report) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
