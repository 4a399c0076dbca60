// cmd/pazy/main.go
package main

import (
	"pazy/internal/app"
	"pazy/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
