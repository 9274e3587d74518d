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

// parseServerFlags parses the server flag set from args (usually
// os.Args[1:]). A dedicated FlagSet keeps flag state test-local instead of
// mutating the process-wide default set.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseServerFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("kinkeeper-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseClientFlags parses the client daemon flag set from args.
//
// Flags:
//
//	-cache local cache SQLite file path
//	-server remote API base URL
//	-c/-config json file path with configs
//	-flush-interval background flush period (e.g., "5m")
//	-tombstone-retention tombstone sweep retention window (e.g., "720h")
//	-request-timeout remote request timeout
func parseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("kinkeeper-client", flag.ContinueOnError)

	var cachePath string
	var baseURL string
	var jsonConfigPath string
	var flushInterval time.Duration
	var tombstoneRetention time.Duration
	var requestTimeout time.Duration

	fs.StringVar(&cachePath, "cache", "", "Local cache SQLite file path")
	fs.StringVar(&baseURL, "server", "", "Remote API base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&flushInterval, "flush-interval", 0, "Background flush period (e.g., 5m)")
	fs.DurationVar(&tombstoneRetention, "tombstone-retention", 0, "Tombstone retention window (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &ClientConfig{
		Cache: Cache{
			Path:               cachePath,
			TombstoneRetention: tombstoneRetention,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			FlushInterval: flushInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so mergo
// treats the field as unset.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
