package main

import (
	"flag"
	"os"

	"github.com/louisbranch/portfolio.space/internal/platform/config"
	"github.com/louisbranch/portfolio.space/internal/tools/passwordhash"
)

func main() {
	cfg, err := passwordhash.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := passwordhash.Run(cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("hash password: %v", err)
	}
}
