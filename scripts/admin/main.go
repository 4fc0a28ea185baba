package main

import (
	"os"

	"github.com/carson-networks/expense-server/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.WithError(err).Fatal("admin")
	}
}
