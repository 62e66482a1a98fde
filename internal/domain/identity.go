package domain

import (
	"strconv"
	"strings"
)

// SubnetIdentity returns the graph subject name for a subnet CIDR.
// The slash is not legal in a local name, so "10.1.1.0/24" becomes
// "Subnet_10.1.1.0_24". Every reference to the same CIDR resolves to the
// same subject regardless of which entity declared it.
func SubnetIdentity(cidr string) string {
	return "Subnet_" + strings.ReplaceAll(cidr, "/", "_")
}

// VLANIdentity returns the graph subject name for a VLAN number,
// e.g. "VLAN100" for 100
func VLANIdentity(vlanID int) string {
	return "VLAN" + strconv.Itoa(vlanID)
}
