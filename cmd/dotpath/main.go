package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hasbyte1/go-dotpath/internal/cli"
)

const (
	cmdName = "dotpath"

	shortDesc = "Query and edit nested JSON and YAML documents by key path."
	longDesc  = `dotpath tests, reads, writes and removes values in JSON and YAML documents
addressed by delimiter-separated key paths such as "server.tls.enabled".

FILE may be "-" to read the document from stdin. Modified documents are
written to stdout unless --in_place or --output is given.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
