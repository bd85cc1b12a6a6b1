package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
)

// NetAddress holds structured network address data for host and port.
// It implements the kingpin.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-c/--config       JSON or YAML config file path
//	--env-file        environment file path
//	-a/--address      HTTP server address in format [host]:[port]
//	-d/--database-url PostgreSQL connection string
//	-e/--environment  deployment environment name
//	--cors-origins    allowed CORS origins, JSON array or comma-separated
func parseFlags(args []string) (*layer, error) {
	var (
		l       = newLayer()
		address NetAddress
		set     = make(map[string]*bool)
	)

	app := kingpin.New("hopwhistle-api", "Hopwhistle call-tracking API server.")
	app.HelpFlag.Short('h')

	flag := func(key, name, help string) *kingpin.FlagClause {
		set[key] = new(bool)
		return app.Flag(name, help).IsSetByUser(set[key])
	}

	flag("CONFIG", "config", "JSON or YAML config file path.").Short('c').StringVar(&l.FilePath)
	flag("ENV_FILE", "env-file", "Environment file consulted for unset variables.").StringVar(&l.EnvFile)
	flag("SERVER_ADDRESS", "address", "HTTP server address host:port.").Short('a').SetValue(&address)
	flag("DATABASE_URL", "database-url", "PostgreSQL connection string.").Short('d').StringVar(&l.Database.URL)
	flag("ENVIRONMENT", "environment", "Deployment environment name.").Short('e').StringVar(&l.Environment)
	corsOrigins := flag("CORS_ORIGINS", "cors-origins", "Allowed CORS origins, JSON array or comma-separated.").String()

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for key, setByUser := range set {
		if *setByUser {
			l.keys[key] = struct{}{}
		}
	}

	if l.has("SERVER_ADDRESS") {
		l.Server.Address = address.String()
	}

	if l.has("CORS_ORIGINS") {
		origins, err := ParseOrigins(*corsOrigins)
		if err != nil {
			return nil, &CoercionError{Key: "--cors-origins", Type: "a list of strings", Err: err}
		}
		l.CORSOrigins = origins
	}

	return l, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
