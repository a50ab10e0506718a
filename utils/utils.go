package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IsYes returns true if the answer of a yes/no question is yes, case-insensitive
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
