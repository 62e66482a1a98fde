// Package sample builds a small reference topology: one router, one access
// switch, and one workstation joined by two links, with user, server, and
// management VLANs. It doubles as living documentation for wiring entities
// together and as the fixture behind the end-to-end tests.
package sample

import (
	"netmodel/internal/domain"
)

// Network returns the reference topology as a flat entity collection,
// logical entities first
func Network() []domain.Entity {
	users := domain.NewSubnet("Subnet_10.0.10.0_24", "10.0.10.0/24")
	users.Description = "Subnet for user devices"
	servers := domain.NewSubnet("Subnet_10.0.20.0_24", "10.0.20.0/24")
	servers.Description = "Subnet for servers"
	mgmt := domain.NewSubnet("Subnet_192.168.99.0_24", "192.168.99.0/24")
	mgmt.Description = "Management subnet"
	transit := domain.NewSubnet("Subnet_10.0.0.0_30", "10.0.0.0/30")
	transit.Description = "Transit link between R1 and Sw1"

	vlan10 := domain.NewVLAN("VLAN10_obj", 10)
	vlan10.Name = "Users"
	vlan10.Description = "VLAN for general user access"
	vlan10.Subnets = []string{users.CIDR}

	vlan20 := domain.NewVLAN("VLAN20_obj", 20)
	vlan20.Name = "Servers"
	vlan20.Description = "VLAN for server infrastructure"
	vlan20.Subnets = []string{servers.CIDR}

	vlan99 := domain.NewVLAN("VLAN99_obj", 99)
	vlan99.Name = "Management"
	vlan99.Description = "VLAN for network device management"
	vlan99.Subnets = []string{mgmt.CIDR}

	assignR1 := domain.NewAddressAssignment("Assign_R1_Eth0_10.0.0.1", "10.0.0.1")
	assignR1.OnSubnet = transit.CIDR
	assignR1.Description = "IP address for Router1's interface on the transit link"

	assignH1 := domain.NewAddressAssignment("Assign_H1_Eth0_10.0.10.50", "10.0.10.50")
	assignH1.OnSubnet = users.CIDR

	assignServer := domain.NewAddressAssignment("Assign_Server_Eth0_10.0.20.100", "10.0.20.100")
	assignServer.OnSubnet = servers.CIDR

	router1 := domain.NewRouter("Router1")
	router1.Description = "Main campus router"
	router1.Ifaces = []string{"R1_Eth0"}
	router1.Neighbors = []string{"Switch1"}
	router1.RoutesSubnets = []string{users.CIDR, servers.CIDR, mgmt.CIDR, transit.CIDR}

	switch1 := domain.NewSwitch("Switch1")
	switch1.Description = "Access layer switch 1"
	switch1.Ifaces = []string{"Sw1_Fa0-1", "Sw1_Fa0-2", "Sw1_Gi0-1"}
	switch1.Neighbors = []string{"Router1", "Host1"}

	host1 := domain.NewHost("Host1")
	host1.Description = "Example user workstation"
	host1.Ifaces = []string{"H1_Eth0"}
	host1.Neighbors = []string{"Switch1"}

	r1Eth0 := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{
			ID:          "R1_Eth0",
			Description: "Router1 Ethernet0 - Connects to Switch1 Gi0/1",
		},
		PortMode:      domain.PortModeUnconfigured,
		BelongsTo:     "Router1",
		ConnectedLink: "Link_R1_Sw1",
		Assignments:   []string{assignR1.ID},
	}

	sw1Fa01 := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{ID: "Sw1_Fa0-1"},
		PortMode:       domain.PortModeAccess,
		AccessVLAN:     10,
		BelongsTo:      "Switch1",
		ConnectedLink:  "Link_Sw1_H1",
	}

	sw1Fa02 := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{ID: "Sw1_Fa0-2"},
		PortMode:       domain.PortModeAccess,
		AccessVLAN:     20,
		BelongsTo:      "Switch1",
	}

	sw1Gi01 := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{ID: "Sw1_Gi0-1"},
		PortMode:       domain.PortModeTrunk,
		AllowedVLANs:   []int{10, 20, 99},
		BelongsTo:      "Switch1",
		ConnectedLink:  "Link_R1_Sw1",
	}

	h1Eth0 := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{ID: "H1_Eth0"},
		PortMode:       domain.PortModeUnconfigured,
		BelongsTo:      "Host1",
		ConnectedLink:  "Link_Sw1_H1",
		Assignments:    []string{assignH1.ID},
	}

	linkR1Sw1 := domain.NewLink("Link_R1_Sw1", "R1_Eth0", "Sw1_Gi0-1")
	linkR1Sw1.Technology = "Ethernet"

	linkSw1H1 := domain.NewLink("Link_Sw1_H1", "Sw1_Fa0-1", "H1_Eth0")
	linkSw1H1.Technology = "Ethernet"

	return []domain.Entity{
		users, servers, mgmt, transit,
		vlan10, vlan20, vlan99,
		assignR1, assignH1, assignServer,
		router1, switch1, host1,
		r1Eth0, sw1Fa01, sw1Fa02, sw1Gi01, h1Eth0,
		linkR1Sw1, linkSw1H1,
	}
}
