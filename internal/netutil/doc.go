// Package netutil provides host networking helpers for guest
// provisioning: MAC address generation, interface address lookup and
// guest hostname resolution against the virtualization host's DNS.
package netutil
