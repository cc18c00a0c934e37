package config

import (
	"flag"
	"os"
	"time"

	"github.com/snowsquad/engine/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   public photo base URL
//	-n string   classifier endpoint URL
//	-k string   classifier API key
//	-o int      classifier timeout, seconds
//	-r int      classifier retry attempts
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and then converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-l", "-n", "-k", "-o", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.PhotoBaseURL, "l", config.PhotoBaseURL, "public photo base URL")
	fs.StringVar(&config.ClassifierEndpoint, "n", config.ClassifierEndpoint, "classifier endpoint URL")
	fs.StringVar(&config.ClassifierAPIKey, "k", config.ClassifierAPIKey, "classifier API key")

	classifierTimeout := fs.Int("o", int(config.ClassifierTimeout.Seconds()), "classifier_timeout (in seconds)")
	fs.Uint64Var(&config.ClassifierRetries, "r", config.ClassifierRetries, "classifier retry attempts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
	config.ClassifierTimeout = time.Duration(*classifierTimeout) * time.Second
}
