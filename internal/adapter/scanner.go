package adapter

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Ullaakut/nmap/v3"

	"netmodel/internal/domain"
)

// DefaultPorts covers SSH, web, SNMP, and NETCONF so device kinds can
// be inferred from which of them answer.
const DefaultPorts = "22,80,443,161,830"

// maxConcurrentProbes bounds parallel SSH sessions during enrichment.
const maxConcurrentProbes = 5

// Scanner sweeps network targets and synthesizes topology entities from
// the live hosts it finds.
type Scanner struct {
	targets []string
	ports   string
	timeout time.Duration
	prober  HostProber
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithPorts sets the port list passed to the sweep. The list uses nmap
// syntax: comma-separated ports and ranges, e.g. "22,80,443" or "1-1024".
func WithPorts(ports string) Option {
	return func(s *Scanner) {
		s.ports = ports
	}
}

// WithTimeout bounds the sweep of a single target.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scanner) {
		s.timeout = timeout
	}
}

// WithProber attaches a prober used to enrich discovered hosts that
// expose SSH.
func WithProber(p HostProber) Option {
	return func(s *Scanner) {
		s.prober = p
	}
}

// NewScanner creates a Scanner for the given targets. Targets may be
// CIDR ranges, single IP addresses, or hostnames; CIDR targets are
// canonicalized to their network address.
func NewScanner(targets []string, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		ports:   DefaultPorts,
		timeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no scan targets given")
	}
	normalized, err := normalizeTargets(targets)
	if err != nil {
		return nil, err
	}
	s.targets = normalized

	if err := validatePorts(s.ports); err != nil {
		return nil, err
	}
	return s, nil
}

// Discover sweeps every configured target and returns the synthesized
// entities. A failed sweep aborts discovery; per-host problems within a
// sweep only skip that host.
func (s *Scanner) Discover(ctx context.Context) ([]domain.Entity, error) {
	var entities []domain.Entity
	var probes []probeTarget

	for _, target := range s.targets {
		result, err := s.scanTarget(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", target, err)
		}
		found, hosts := synthesize(target, result)
		entities = append(entities, found...)
		probes = append(probes, hosts...)
	}

	if s.prober != nil && len(probes) > 0 {
		s.enrich(ctx, probes)
	}
	return entities, nil
}

func (s *Scanner) scanTarget(ctx context.Context, target string) (*nmap.Run, error) {
	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	scanner, err := nmap.NewScanner(
		scanCtx,
		nmap.WithTargets(target),
		nmap.WithPorts(s.ports),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	log.Printf("Scanning %s (ports %s)", target, s.ports)
	result, warnings, err := scanner.Run()
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if warnings != nil && len(*warnings) > 0 {
		log.Printf("Scan warnings for %s: %v", target, *warnings)
	}
	return result, nil
}

// probeTarget pairs a discovered node with the address to probe.
type probeTarget struct {
	ip   string
	node *domain.Node
}

// synthesize converts one target's scan results into topology entities.
// A CIDR target additionally produces a Subnet, and every live host gets
// a node, a first interface, and an address assignment on that subnet.
func synthesize(target string, result *nmap.Run) ([]domain.Entity, []probeTarget) {
	if result == nil {
		return nil, nil
	}

	var entities []domain.Entity
	var probes []probeTarget

	cidr := ""
	if _, ipNet, err := net.ParseCIDR(target); err == nil {
		cidr = ipNet.String()
		subnet := domain.NewSubnet(cidr, cidr)
		subnet.Description = "Discovered subnet"
		entities = append(entities, subnet)
	}

	for _, host := range result.Hosts {
		if host.Status.State != "up" || len(host.Addresses) == 0 {
			continue
		}

		ip := hostAddress(host)
		open := openPortSet(host.Ports)

		nodeID := sanitizeIP(ip)
		entity, node := newDiscoveredNode(inferKind(open), nodeID)
		if len(host.Hostnames) > 0 && host.Hostnames[0].Name != "" {
			node.Description = host.Hostnames[0].Name
		}

		iface := &domain.Iface{
			BaseAttributes: domain.BaseAttributes{ID: nodeID + "_eth0"},
			PortMode:       domain.PortModeUnconfigured,
			BelongsTo:      nodeID,
		}
		node.AddIface(iface.ID)

		assignment := domain.NewAddressAssignment("Assign_"+iface.ID+"_"+ip, ip)
		assignment.OnSubnet = cidr
		iface.Assignments = append(iface.Assignments, assignment.ID)

		if router, ok := entity.(*domain.Router); ok && cidr != "" {
			router.AddRoutedSubnet(cidr)
		}

		entities = append(entities, entity, iface, assignment)

		if open[22] {
			probes = append(probes, probeTarget{ip: ip, node: node})
		}
	}

	return entities, probes
}

// newDiscoveredNode builds the entity for an inferred kind and returns
// it together with its mutable node view.
func newDiscoveredNode(kind domain.Kind, id string) (domain.Entity, *domain.Node) {
	if kind == domain.KindRouter {
		router := domain.NewRouter(id)
		return router, &router.Node
	}

	var node *domain.Node
	switch kind {
	case domain.KindSwitch:
		node = domain.NewSwitch(id)
	case domain.KindHost:
		node = domain.NewHost(id)
	default:
		node = domain.NewNode(id)
	}
	return node, node
}

// inferKind guesses the device kind from its open port profile.
func inferKind(open map[uint16]bool) domain.Kind {
	switch {
	case open[53] && (open[80] || open[443]):
		return domain.KindRouter
	case open[830] || (open[161] && !open[22]):
		return domain.KindSwitch
	case len(open) > 0:
		return domain.KindHost
	default:
		return domain.KindNode
	}
}

// hostAddress picks the primary IPv4 address, falling back to the first
// address of any type.
func hostAddress(host nmap.Host) string {
	for _, addr := range host.Addresses {
		if addr.AddrType == "ipv4" {
			return addr.Addr
		}
	}
	return host.Addresses[0].Addr
}

func openPortSet(ports []nmap.Port) map[uint16]bool {
	open := make(map[uint16]bool)
	for _, p := range ports {
		if p.State.State == "open" {
			open[p.ID] = true
		}
	}
	return open
}

// sanitizeIP converts an IP address into a valid entity identifier.
func sanitizeIP(ip string) string {
	if parsed := net.ParseIP(ip); parsed != nil {
		ip = parsed.String()
	}
	ip = strings.ReplaceAll(ip, ".", "-")
	return strings.ReplaceAll(ip, ":", "-")
}

// normalizeTargets canonicalizes CIDR entries and rejects malformed
// ones. Plain addresses and hostnames pass through unchanged.
func normalizeTargets(targets []string) ([]string, error) {
	normalized := make([]string, 0, len(targets))
	for _, target := range targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if strings.Contains(target, "/") {
			_, ipNet, err := net.ParseCIDR(target)
			if err != nil {
				return nil, fmt.Errorf("invalid CIDR %s: %w", target, err)
			}
			normalized = append(normalized, ipNet.String())
			continue
		}
		normalized = append(normalized, target)
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("no scan targets given")
	}
	return normalized, nil
}

// validatePorts checks an nmap-style port list such as "22,80-443,8080".
func validatePorts(ports string) error {
	for _, part := range strings.Split(ports, ",") {
		part = strings.TrimSpace(part)
		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, err := parsePort(start)
			if err != nil {
				return err
			}
			hi, err := parsePort(end)
			if err != nil {
				return err
			}
			if hi < lo {
				return fmt.Errorf("invalid port range: %s", part)
			}
			continue
		}
		if _, err := parsePort(part); err != nil {
			return err
		}
	}
	return nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port number: %q", s)
	}
	return port, nil
}

// enrich probes SSH-reachable hosts and records the hostname they
// report as the node description. A failed probe only skips its host.
func (s *Scanner) enrich(ctx context.Context, targets []probeTarget) {
	sem := make(chan struct{}, maxConcurrentProbes)
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(target probeTarget) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			hostname, err := s.prober.Probe(ctx, target.ip)
			if err != nil {
				log.Printf("Probe %s failed: %v", target.ip, err)
				return
			}
			if hostname != "" {
				target.node.Description = hostname
			}
		}(target)
	}

	wg.Wait()
}
