package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takerfee/cclib/exchanges/backpack"
	"github.com/takerfee/cclib/exchanges/binance"
	"github.com/takerfee/cclib/exchanges/bitmake"
	"github.com/takerfee/cclib/exchanges/bybit"
	"github.com/takerfee/cclib/exchanges/ftx"
	"github.com/takerfee/cclib/exchanges/huobi"
	"github.com/takerfee/cclib/exchanges/okx"
	"github.com/urfave/cli/v2"
)

var exchangeFlag = &cli.StringFlag{
	Name:  "exchange",
	Usage: "the exchange to query",
}

var symbolFlag = &cli.StringFlag{
	Name:  "symbol",
	Usage: "venue native symbol, e.g. BTCUSDT or BTC-USDT",
}

var categoryFlag = &cli.StringFlag{
	Name:  "category",
	Usage: "market category for venues that partition instruments, e.g. SPOT or linear",
}

var statusCommand = &cli.Command{
	Name:      "status",
	Usage:     "returns operational status or server time for an exchange",
	ArgsUsage: "<exchange>",
	Flags:     []cli.Flag{exchangeFlag},
	Action:    getStatus,
}

func getStatus(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	name := exchangeName(c)
	opts, err := clientOptions(c, name)
	if err != nil {
		return err
	}
	switch name {
	case "binance":
		e, err := binance.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetSystemStatus(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybitv5":
		e, err := bybit.NewV5(opts)
		if err != nil {
			return err
		}
		r, err := e.GetServerTime(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "huobi":
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.Heartbeat(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.SystemStatus(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bitmake":
		e, err := bitmake.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetBaseInfo(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}

var marketsCommand = &cli.Command{
	Name:      "markets",
	Usage:     "returns the instruments listed on an exchange",
	ArgsUsage: "<exchange>",
	Flags:     []cli.Flag{exchangeFlag, categoryFlag},
	Action:    getMarkets,
}

func getMarkets(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	name := exchangeName(c)
	opts, err := clientOptions(c, name)
	if err != nil {
		return err
	}
	switch name {
	case "binance":
		e, err := binance.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetExchangeInfo(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybit":
		e, err := bybit.New(opts)
		if err != nil {
			return err
		}
		if strings.EqualFold(c.String("category"), "spot") {
			r, err := e.GetSpotSymbols(c.Context)
			if err != nil {
				return err
			}
			jsonOutput(r)
		} else {
			r, err := e.GetSymbols(c.Context)
			if err != nil {
				return err
			}
			jsonOutput(r)
		}
	case "huobi":
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.LinearGetContractInfo(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetInstruments(c.Context, categoryOrDefault(c, "SPOT"), "", "")
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "ftx":
		e, err := ftx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetMarkets(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "backpack":
		e, err := backpack.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetMarkets(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bitmake":
		e, err := bitmake.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetSymbols(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}

var tickerCommand = &cli.Command{
	Name:      "ticker",
	Usage:     "returns current prices for one symbol or the whole venue",
	ArgsUsage: "<exchange> [<symbol>]",
	Flags:     []cli.Flag{exchangeFlag, symbolFlag, categoryFlag},
	Action:    getTicker,
}

func getTicker(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	name := exchangeName(c)
	symbol := symbolArg(c)
	opts, err := clientOptions(c, name)
	if err != nil {
		return err
	}
	switch name {
	case "binance":
		e, err := binance.New(opts)
		if err != nil {
			return err
		}
		if symbol == "" {
			r, err := e.GetTickerPrices(c.Context)
			if err != nil {
				return err
			}
			jsonOutput(r)
		} else {
			r, err := e.GetTickerPrice(c.Context, symbol)
			if err != nil {
				return err
			}
			jsonOutput(r)
		}
	case "bybit":
		e, err := bybit.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetTickers(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybitv5":
		e, err := bybit.NewV5(opts)
		if err != nil {
			return err
		}
		r, err := e.GetTickers(c.Context, categoryOrDefault(c, "linear"), symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "huobi":
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.LinearGetIndex(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetTickers(c.Context, categoryOrDefault(c, "SPOT"), "", symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "ftx":
		e, err := ftx.New(opts)
		if err != nil {
			return err
		}
		if symbol == "" {
			r, err := e.GetMarkets(c.Context)
			if err != nil {
				return err
			}
			jsonOutput(r)
		} else {
			r, err := e.GetMarket(c.Context, symbol)
			if err != nil {
				return err
			}
			jsonOutput(r)
		}
	case "backpack":
		if symbol == "" {
			return errors.New("backpack requires a symbol")
		}
		e, err := backpack.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetTicker(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bitmake":
		e, err := bitmake.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetIndex(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}
