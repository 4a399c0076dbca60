// cmd/pazy-xref/main.go
package main

import (
	"pazy/internal/appshell"
	"pazy/internal/xrefapp"
)

func main() {
	appshell.Main(xrefapp.RunContext)
}
