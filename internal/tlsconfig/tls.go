// Package tlsconfig turns optional certificate paths into transport credentials.
// An empty certificate path always means plaintext.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// ServerTLSConfig loads a certificate/key pair for a listener.
// Returns nil when certFile is empty.
func ServerTLSConfig(certFile, keyFile string) (*tls.Config, error) {
	if certFile == "" {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair %s/%s: %w", certFile, keyFile, err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// ClientTLSConfig builds a client configuration trusting the PEM bundle in caFile.
// Returns nil when caFile is empty.
func ClientTLSConfig(caFile, serverName string) (*tls.Config, error) {
	if caFile == "" {
		return nil, nil
	}
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caFile)
	}
	return &tls.Config{
		RootCAs:    pool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}, nil
}

// ServerOption returns the grpc.ServerOption for the given identity, or nil for plaintext.
func ServerOption(certFile, keyFile string) (grpc.ServerOption, error) {
	cfg, err := ServerTLSConfig(certFile, keyFile)
	if err != nil || cfg == nil {
		return nil, err
	}
	return grpc.Creds(credentials.NewTLS(cfg)), nil
}

// DialOption returns transport credentials for a client, insecure when caFile is empty.
func DialOption(caFile, serverName string) (grpc.DialOption, error) {
	cfg, err := ClientTLSConfig(caFile, serverName)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return grpc.WithTransportCredentials(insecure.NewCredentials()), nil
	}
	return grpc.WithTransportCredentials(credentials.NewTLS(cfg)), nil
}
