package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/takerfee/cclib/common"
	"github.com/takerfee/cclib/config"
	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/transport"
	"github.com/urfave/cli/v2"
)

var errUnsupported = errors.New("unsupported exchange for this operation")

// clientOptions merges configuration file settings with command line
// overrides for the named exchange. Command line credentials and an
// explicitly set timeout win over configured values.
func clientOptions(c *cli.Context, name string) (*exchange.Options, error) {
	opts := &exchange.Options{
		Verbose:       verbose,
		HTTPDebugging: httpDebugging,
		Timeout:       timeout,
	}
	proxy := proxyAddr
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		ec, err := cfg.GetExchangeConfig(name)
		switch {
		case err == nil:
			opts.BaseURL = ec.BaseURL
			opts.UserAgent = ec.HTTPUserAgent
			opts.Verbose = opts.Verbose || ec.Verbose
			opts.HTTPDebugging = opts.HTTPDebugging || ec.HTTPDebugging
			if ec.HTTPTimeout > 0 && !c.IsSet("timeout") {
				opts.Timeout = ec.HTTPTimeout
			}
			if proxy == "" {
				proxy = ec.ProxyAddress
			}
			if ec.API.AuthenticatedSupport {
				opts.Credentials = ec.AccountCredentials()
			}
		case errors.Is(err, config.ErrExchangeNotFound):
			// Venue defaults apply when the file has no entry
		default:
			return nil, err
		}
	}
	if exchangeCreds.Key != "" || exchangeCreds.Secret != "" {
		creds := exchangeCreds
		opts.Credentials = &creds
	}
	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, err
		}
		pool := transport.NewPool()
		if err := pool.SetProxy(u); err != nil {
			return nil, err
		}
		opts.Pool = pool
	}
	return opts, nil
}

// exchangeName takes the exchange from the flag or the first positional
// argument, lowercased so dispatch is case insensitive.
func exchangeName(c *cli.Context) string {
	var name string
	if c.IsSet("exchange") {
		name = c.String("exchange")
	} else {
		name = c.Args().First()
	}
	return strings.ToLower(name)
}

// symbolArg takes the venue native symbol from the flag or the second
// positional argument.
func symbolArg(c *cli.Context) string {
	if c.IsSet("symbol") {
		return c.String("symbol")
	}
	return c.Args().Get(1)
}

func categoryOrDefault(c *cli.Context, value string) string {
	if cat := c.String("category"); cat != "" {
		return cat
	}
	return value
}

func parseTimeRange(c *cli.Context) (start, end time.Time, err error) {
	start, err = time.Parse(common.SimpleTimeFormat, c.String("start"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err = time.Parse(common.SimpleTimeFormat, c.String("end"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("start time must be before end time")
	}
	return start, end, nil
}
