package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/takerfee/cclib/exchanges/binance"
	"github.com/takerfee/cclib/exchanges/bybit"
	"github.com/takerfee/cclib/exchanges/ftx"
	"github.com/takerfee/cclib/exchanges/huobi"
	"github.com/takerfee/cclib/exchanges/okx"
	"github.com/urfave/cli/v2"
)

var balanceCommand = &cli.Command{
	Name:      "balance",
	Usage:     "returns account balances, with total equity where the venue prices them",
	ArgsUsage: "<exchange>",
	Flags: []cli.Flag{
		exchangeFlag,
		&cli.StringFlag{
			Name:  "currency",
			Usage: "restrict the response to one currency where supported",
		},
		&cli.StringFlag{
			Name:  "account",
			Value: "UNIFIED",
			Usage: "account type for venues that partition wallets",
		},
	},
	Action: getBalance,
}

// printEquity renders the USD equity sum ahead of the raw payload. Only
// venues that price balances in USD get this line.
func printEquity(total decimal.Decimal) {
	fmt.Println(aurora.Bold(aurora.Green(fmt.Sprintf("total equity: %s USD", total.StringFixed(2)))))
}

func getBalance(c *cli.Context) error {
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
		r, err := e.GetAccountInfo(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybit":
		e, err := bybit.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetWalletBalance(c.Context, c.String("currency"))
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybitv5":
		e, err := bybit.NewV5(opts)
		if err != nil {
			return err
		}
		accounts, err := e.GetWalletBalance(c.Context, c.String("account"), c.String("currency"))
		if err != nil {
			return err
		}
		total := decimal.Zero
		for i := range accounts {
			total = total.Add(decimal.NewFromFloat(accounts[i].TotalEquity.Float64()))
		}
		printEquity(total)
		jsonOutput(accounts)
	case "huobi":
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.LinearGetCrossAccountInfo(c.Context, "")
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		balances, err := e.GetBalance(c.Context, c.String("currency"))
		if err != nil {
			return err
		}
		total := decimal.Zero
		for i := range balances {
			total = total.Add(decimal.NewFromFloat(balances[i].TotalEq.Float64()))
		}
		printEquity(total)
		jsonOutput(balances)
	case "okxv3":
		e, err := okx.NewV3(opts)
		if err != nil {
			return err
		}
		r, err := e.V3GetAccounts(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "ftx":
		e, err := ftx.New(opts)
		if err != nil {
			return err
		}
		balances, err := e.GetBalances(c.Context)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for i := range balances {
			total = total.Add(decimal.NewFromFloat(balances[i].UsdValue))
		}
		printEquity(total)
		jsonOutput(balances)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}

var positionsCommand = &cli.Command{
	Name:      "positions",
	Usage:     "returns open derivative positions",
	ArgsUsage: "<exchange> [<symbol>]",
	Flags:     []cli.Flag{exchangeFlag, symbolFlag, categoryFlag},
	Action:    getPositions,
}

func getPositions(c *cli.Context) error {
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
		r, err := e.UPositionRisk(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybit":
		e, err := bybit.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetPositions(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "bybitv5":
		e, err := bybit.NewV5(opts)
		if err != nil {
			return err
		}
		r, err := e.GetPositions(c.Context, categoryOrDefault(c, "linear"), symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "huobi":
		e, err := huobi.New(opts)
		if err != nil {
			return err
		}
		r, err := e.LinearGetCrossPositions(c.Context, symbol)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okx":
		e, err := okx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetPositions(c.Context, c.String("category"), symbol, "")
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "okxv3":
		e, err := okx.NewV3(opts)
		if err != nil {
			return err
		}
		r, err := e.V3GetPositions(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	case "ftx":
		e, err := ftx.New(opts)
		if err != nil {
			return err
		}
		r, err := e.GetPositions(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(r)
	default:
		return fmt.Errorf("%q: %w", name, errUnsupported)
	}
	return nil
}
