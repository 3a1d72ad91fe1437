package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-session-duration session lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-report-interval weekly report worker wake-up interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var reportInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx|sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 168h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&reportInterval, "report-interval", 0, "Weekly report worker interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ReportInterval: reportInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
