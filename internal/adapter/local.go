package adapter

import (
	"fmt"
	"net"
	"strings"
)

// LocalTargets returns the private IPv4 subnets of the host's active
// interfaces in canonical CIDR form. Loopback, down, and
// container-virtual interfaces are skipped. Discovery falls back to
// these when no targets are configured.
func LocalTargets() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	var targets []string
	seen := make(map[string]bool)

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		if isVirtualInterface(iface.Name) {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 == nil || !ip4.IsPrivate() {
				continue
			}
			ones, _ := ipNet.Mask.Size()
			cidr := fmt.Sprintf("%s/%d", ipNet.IP.Mask(ipNet.Mask), ones)
			if !seen[cidr] {
				seen[cidr] = true
				targets = append(targets, cidr)
			}
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no private IPv4 subnets on local interfaces")
	}
	return targets, nil
}

// isVirtualInterface matches the interface names containers and
// overlay networks create.
func isVirtualInterface(name string) bool {
	for _, prefix := range []string{"veth", "docker", "br-", "cni", "flannel"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
