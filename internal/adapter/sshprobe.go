package adapter

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// HostProber gathers facts from a live host during discovery.
type HostProber interface {
	// Probe returns the hostname the host reports for itself.
	Probe(ctx context.Context, ip string) (string, error)
}

// SSHProbe asks hosts for their hostname over SSH using key auth.
type SSHProbe struct {
	user    string
	keyPath string
	timeout time.Duration
}

// NewSSHProbe creates a probe authenticating as user with the private
// key at keyPath. A zero timeout defaults to five seconds.
func NewSSHProbe(user, keyPath string, timeout time.Duration) *SSHProbe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SSHProbe{
		user:    user,
		keyPath: keyPath,
		timeout: timeout,
	}
}

// Probe connects to the host on port 22 and runs hostname.
func (p *SSHProbe) Probe(ctx context.Context, ip string) (string, error) {
	config, err := p.clientConfig()
	if err != nil {
		return "", err
	}

	addr := net.JoinHostPort(ip, "22")
	dialer := &net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to dial: %w", err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return "", fmt.Errorf("failed to establish SSH connection: %w", err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput("hostname")
	if err != nil {
		return "", fmt.Errorf("hostname command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// clientConfig builds the SSH client config from the configured key.
// Host keys are not verified; discovery talks to hosts it has never
// seen before.
func (p *SSHProbe) clientConfig() (*ssh.ClientConfig, error) {
	if p.user == "" {
		return nil, fmt.Errorf("ssh user not configured")
	}

	keyData, err := os.ReadFile(p.keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &ssh.ClientConfig{
		User:            p.user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         p.timeout,
	}, nil
}
