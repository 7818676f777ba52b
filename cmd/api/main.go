package main

import (
	"flag"
	"log"
	"pmsdesk/api"
	"pmsdesk/internal/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	a, err := app.New(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	err = api.StartApi(a.Config.Port, a.Resolver(), a.Logger, a.Config.BlockedIPs)
	if err != nil {
		a.Logger.WithError(err).Fatal("api stopped")
	}
}
