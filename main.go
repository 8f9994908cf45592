package main

import (
	"github.com/certvault/certvault/cmd"
	"github.com/certvault/certvault/pkg/logger"
)

func main() {
	logger.Initialize()
	cmd.Execute()
}
