// Command bigrat evaluates rational number expressions.
package main

import (
	"github.com/joeycumines/go-bigrat/internal/cli"
)

func main() {
	cli.Execute()
}
