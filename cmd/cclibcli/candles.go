package main

import (
	"fmt"
	"time"

	"github.com/takerfee/cclib/common"
	"github.com/takerfee/cclib/exchanges/backpack"
	"github.com/takerfee/cclib/exchanges/binance"
	"github.com/takerfee/cclib/exchanges/bitmake"
	"github.com/takerfee/cclib/exchanges/bybit"
	"github.com/takerfee/cclib/exchanges/ftx"
	"github.com/takerfee/cclib/exchanges/huobi"
	"github.com/takerfee/cclib/exchanges/okx"
	"github.com/urfave/cli/v2"
)

// Interval flags use the spot convention; every venue speaks its own
// dialect so the tables below translate.
var (
	bybitIntervals = map[string]string{
		"1m": "1", "5m": "5", "15m": "15", "30m": "30",
		"1h": "60", "4h": "240", "1d": "D", "1w": "W",
	}
	okxBars = map[string]string{
		"1m": "1m", "5m": "5m", "15m": "15m", "30m": "30m",
		"1h": "1H", "4h": "4H", "1d": "1D", "1w": "1W",
	}
	huobiPeriods = map[string]string{
		"1m": "1min", "5m": "5min", "15m": "15min", "30m": "30min",
		"1h": "60min", "4h": "4hour", "1d": "1day", "1w": "1week",
	}
	ftxResolutions = map[string]int64{
		"1m": 60, "5m": 300, "15m": 900, "30m": 1800,
		"1h": 3600, "4h": 14400, "1d": 86400, "1w": 604800,
	}
)

var candlesCommand = &cli.Command{
	Name:      "candles",
	Usage:     "returns kline data for a symbol",
	ArgsUsage: "<exchange> <symbol> [<interval>]",
	Flags: []cli.Flag{
		exchangeFlag,
		symbolFlag,
		categoryFlag,
		&cli.StringFlag{
			Name:  "interval",
			Value: "1m",
			Usage: "candle interval: 1m, 5m, 15m, 30m, 1h, 4h, 1d or 1w",
		},
		&cli.StringFlag{
			Name:  "start",
			Value: time.Now().AddDate(0, 0, -1).Format(common.SimpleTimeFormat),
			Usage: "the start date",
		},
		&cli.StringFlag{
			Name:  "end",
			Value: time.Now().Format(common.SimpleTimeFormat),
			Usage: "the end date",
		},
		&cli.Int64Flag{
			Name:  "limit",
			Value: 100,
			Usage: "maximum number of candles where the venue accepts one",
		},
	},
	Action: getCandles,
}

func getCandles(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	name := exchangeName(c)
	symbol := symbolArg(c)
	interval := c.String("interval")
	if !c.IsSet("interval") && c.Args().Get(2) != "" {
		interval = c.Args().Get(2)
	}
	start, end, err := parseTimeRange(c)
	if err != nil {
		return err
	}
	limit := c.Int64("limit")
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
		r, err := e.GetCandles(c.Context, symbol, interval, start, end, limit)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybit":
		code, ok := bybitIntervals[interval]
		if !ok {
			return fmt.Errorf("unsupported interval %q", interval)
		}
		e, err := bybit.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, symbol, code, start, limit)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybitv5":
		code, ok := bybitIntervals[interval]
		if !ok {
			return fmt.Errorf("unsupported interval %q", interval)
		}
		e, err := bybit.NewV5(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, categoryOrDefault(c, "linear"), symbol, code, start, end, limit)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "huobi":
		period, ok := huobiPeriods[interval]
		if !ok {
			return fmt.Errorf("unsupported interval %q", interval)
		}
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.LinearGetCandles(c.Context, symbol, period, start, end)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		bar, ok := okxBars[interval]
		if !ok {
			return fmt.Errorf("unsupported interval %q", interval)
		}
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, symbol, bar, start, end, limit)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "ftx":
		resolution, ok := ftxResolutions[interval]
		if !ok {
			return fmt.Errorf("unsupported interval %q", interval)
		}
		e, err := ftx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, symbol, resolution, start, end)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "backpack":
		e, err := backpack.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, symbol, interval, start, end)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bitmake":
		e, err := bitmake.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetCandles(c.Context, symbol, interval, end, limit)
		if err != nil {
			return err
		}
		jsonOutput(r)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}
