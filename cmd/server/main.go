package main

import (
	"log"

	"github.com/dom/prodle/internal/config"
	"github.com/spf13/cobra"
)

const releaseVersion = "1.0.0"

func main() {
	log.SetFlags(0)
	cfg := config.Default()
	cobra.CheckErr(newCmd(cfg).Execute())
}
