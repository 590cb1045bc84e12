package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-u note endpoint URL used by the client
//	-request-timeout client request timeout (e.g., "10s")
//	-clear-delay status message clear delay (e.g., "2s")
//	-log-file client log file path
//	-a server address in format [host]:[port]
//	-server-timeout server request timeout (e.g., "15s")
//	-rate-limit server requests per second (0 disables)
//	-rate-burst server request burst size
//	-max-note-size largest accepted note, in bytes
//	-d database DSN
//	-c/-config json file path with configs
//	-env-file .env file path
func parseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagSet(args, os.Stderr)
}

func parseFlagSet(args []string, output io.Writer) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("shared-note", flag.ContinueOnError)
	fs.SetOutput(output)

	var serverAddress NetAddress
	var noteURL string
	var requestTimeout time.Duration
	var clearDelay time.Duration
	var logFile string
	var serverTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var maxNoteSize int64
	var databaseDSN string
	var jsonConfigPath string
	var envFilePath string

	fs.StringVar(&noteURL, "u", "", "Note endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&clearDelay, "clear-delay", 0, "Status message clear delay (e.g., 2s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 15s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Server requests per second (0 disables)")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Server request burst size")
	fs.Int64Var(&maxNoteSize, "max-note-size", 0, "Largest accepted note, in bytes")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:     logFile,
			MaxNoteSize: maxNoteSize,
		},
		Adapter: Adapter{
			NoteURL:        noteURL,
			RequestTimeout: requestTimeout,
		},
		Status: Status{
			ClearDelay: clearDelay,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
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
// An empty host means all interfaces; otherwise the host must be "localhost"
// or a valid IP address.
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
		return errors.New("port number must be in range 1-65535")
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
