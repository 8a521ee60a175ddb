package main

import (
	"github.com/ssargent/stega/cmd/stega/cmd"
	"github.com/ssargent/stega/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
