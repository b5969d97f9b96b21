// Command gar fetches, caches and queries hourly GitHub Archive dumps.
package main

import (
	"os"

	"gar/internal/cli"
	"gar/internal/platform/logger"
)

func main() {
	logger.Init(logger.FromEnv())
	os.Exit(cli.Execute())
}
