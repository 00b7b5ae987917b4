package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a backend base address for the client, e.g. http://localhost:3000
//	-l dev server listen address in format [host]:[port]
//	-d local SQLite DSN
//	-c/-config json file path with configs
//	-log-file client log file path
//	-page-size transactions per page
//	-chart-path balance chart export path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fin-tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var listenAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var logFile string
	var pageSize int
	var chartPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	fs.StringVar(&adapterAddress, "a", "", "Backend base address")
	fs.Var(&listenAddress, "l", "Dev server listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.IntVar(&pageSize, "page-size", 0, "Transactions per page")
	fs.StringVar(&chartPath, "chart-path", "", "Balance chart export path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:   logFile,
			PageSize:  pageSize,
			ChartPath: chartPath,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
