//go:build tools

// Package tools pins the versions of command-line tools used during
// development so `go run` resolves them from go.mod.
package tools

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs --outputTypes go
//go:generate go run github.com/vektra/mockery/v2

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
