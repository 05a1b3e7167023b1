// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a                 password API base URL (client)
//	-request-timeout   client request timeout (e.g. "15s")
//	-copy-reset-delay  lifetime of the "copied" indicator (e.g. "2s")
//	-listen            reference server address in format [host]:[port]
//	-base-path         reference server route prefix (e.g. "/api")
//	-server-timeout    reference server request timeout (e.g. "30s")
//	-d                 reference server database DSN
//	-token-sign-key    reference server session token key
//	-token-duration    reference server session lifetime (e.g. "24h")
//	-log-file          client log file path
//	-log-level         log level name
//	-c/-config         json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass", flag.ContinueOnError)

	var listenAddress NetAddress
	var apiAddress string
	var requestTimeout, copyResetDelay, serverTimeout, tokenDuration time.Duration
	var basePath, databaseDSN, tokenSignKey string
	var logFile, logLevel string
	var jsonConfigPath string

	fs.StringVar(&apiAddress, "a", "", "Password API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&copyResetDelay, "copy-reset-delay", 0, "Copied indicator lifetime (e.g., 2s)")
	fs.Var(&listenAddress, "listen", "Reference server net address host:port")
	fs.StringVar(&basePath, "base-path", "", "Reference server route prefix")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Reference server request timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token sign key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CopyResetDelay: copyResetDelay,
			TokenSignKey:   tokenSignKey,
			TokenDuration:  tokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			BasePath:       basePath,
			RequestTimeout: serverTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
