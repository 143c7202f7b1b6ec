package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/takerfee/cclib/exchanges/account"
	"github.com/urfave/cli/v2"
)

var (
	configPath    string
	proxyAddr     string
	timeout       time.Duration
	exchangeCreds account.Credentials
	verbose       bool
	httpDebugging bool
)

const defaultTimeout = time.Second * 30

func jsonOutput(in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Print(string(j))
}

func main() {
	app := cli.NewApp()
	app.Name = "cclibcli"
	app.EnableBashCompletion = true
	app.Usage = "command line interface for querying supported exchanges"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to a configuration file holding per exchange settings",
			Destination: &configPath,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the default timeout value for requests",
			Destination: &timeout,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "override config API key for request",
			Destination: &exchangeCreds.Key,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "override config API secret for request",
			Destination: &exchangeCreds.Secret,
		},
		&cli.StringFlag{
			Name:        "apipassphrase",
			Usage:       "override config API passphrase for request",
			Destination: &exchangeCreds.Passphrase,
		},
		&cli.StringFlag{
			Name:        "apisubaccount",
			Usage:       "override config API sub account for request",
			Destination: &exchangeCreds.SubAccount,
		},
		&cli.StringFlag{
			Name:        "proxy",
			Usage:       "proxy address routing all requests",
			Destination: &proxyAddr,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log request and response detail",
			Destination: &verbose,
		},
		&cli.BoolFlag{
			Name:        "httpdebug",
			Usage:       "dump raw HTTP requests and responses",
			Destination: &httpDebugging,
		},
	}
	app.Commands = []*cli.Command{
		statusCommand,
		marketsCommand,
		tickerCommand,
		candlesCommand,
		balanceCommand,
		positionsCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
