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
//	-a server address in format [host]:[port]; expands to the default API
//	   and realtime URLs on that host
//	-api-url REST API root (overrides -a)
//	-ws-url realtime endpoint (overrides -a)
//	-d local cache database path
//	-session-file session store path
//	-c/-config json file path with configs
//	-u login username
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval token check interval (e.g., "5m")
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var apiURL, wsURL string
	var databaseDSN string
	var sessionFile string
	var jsonConfigPath string
	var username string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&apiURL, "api-url", "", "REST API root URL")
	flag.StringVar(&wsURL, "ws-url", "", "Realtime endpoint URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&sessionFile, "session-file", "", "Session store path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&username, "u", "", "Login username")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Token check interval (e.g., 5m)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	if addr := serverAddress.String(); addr != "" {
		if apiURL == "" {
			apiURL = "http://" + addr + "/api/v1"
		}
		if wsURL == "" {
			wsURL = "ws://" + addr + "/ws"
		}
	}

	return &StructuredConfig{
		App: App{
			Username: username,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			WSAddress:      wsURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SessionFile: sessionFile,
		},
		Session: Session{
			RefreshInterval: refreshInterval,
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
