package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
)

// NetAddress is a flag.Value accepting "host:port". An empty host means all
// interfaces.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the process command line into a partial config.
// Invalid flags terminate the process, as flag.CommandLine does.
//
//	-a                     listen address host:port
//	-d, -db-driver         database DSN and driver (pgx or sqlite3)
//	-c, -config            JSON config file
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout, -shutdown-timeout
//	-log-level             zerolog level name
//	-create-user           bootstrap account name:password
//	-objects-*             bucket credentials, domain, hosts and expiries
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg  StructuredConfig
		addr NetAddress
	)

	fs.Var(&addr, "a", "Net address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	app := &cfg.App
	fs.StringVar(&app.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&app.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&app.TokenDuration, "token-duration", 0, "Token lifetime (e.g. 1h, 30m)")
	fs.StringVar(&app.LogLevel, "log-level", "", "Minimal log level")
	fs.StringVar(&app.BootstrapUser, "create-user", "", "Create user at startup, name:password")

	db := &cfg.Storage.DB
	fs.StringVar(&db.DSN, "d", "", "Database DSN")
	fs.StringVar(&db.Driver, "db-driver", "", "Database driver: pgx or sqlite3")

	objects := &cfg.Storage.Objects
	fs.StringVar(&objects.AccessKey, "objects-access-key", "", "Object storage access key")
	fs.StringVar(&objects.SecretKey, "objects-secret-key", "", "Object storage secret key")
	fs.StringVar(&objects.Bucket, "objects-bucket", "", "Object storage bucket")
	fs.StringVar(&objects.Domain, "objects-domain", "", "Object storage download domain")
	fs.StringVar(&objects.RSHost, "objects-rs-host", "", "Object storage management host")
	fs.DurationVar(&objects.URLExpiry, "objects-url-expiry", 0, "Signed download URL lifetime")
	fs.DurationVar(&objects.UploadExpiry, "objects-upload-expiry", 0, "Upload token lifetime")

	srv := &cfg.Server
	fs.DurationVar(&srv.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.DurationVar(&srv.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return &cfg, err
	}

	srv.HTTPAddress = addr.String()
	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port" where host is empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
