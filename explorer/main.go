package main

import (
	"bikeshare/explorer/config"
	"bikeshare/utils"
	"context"
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"syscall"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err)
		return
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	publisher, err := NewPublisher(explorerConfig.Publisher)
	if err != nil {
		log.Fatalf("error creating report publisher: %s", err)
		return
	}

	defer func(publisher Publisher) {
		err := publisher.Close()
		if err != nil {
			log.Errorf("error closing report publisher: %s", err)
		}
	}(publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	explorer := NewExplorer(explorerConfig, NewPrompter(os.Stdin, os.Stdout), publisher, os.Stdout)
	signalChannel := utils.GetSignalChannel()

	go func() {
		err := explorer.Run(ctx)
		if err != nil {
			log.Error(fmt.Sprintf("[component: explorer][status: ERROR] %s", err.Error()))
		}
		log.Debug("[component: explorer][status: OK] finish main.go")
		signalChannel <- syscall.SIGTERM
	}()

	<-signalChannel
}
