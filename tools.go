//go:build tools

package main

// Herramientas de desarrollo versionadas con el módulo (swag genera docs/swagger.json).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
