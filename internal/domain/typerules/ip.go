package typerules

import (
	"net/netip"
	"strings"
)

// isIP reports whether expr is a bare IPv4 or IPv6 literal, optionally
// narrowed with a .mask(<n>) call. Anything carrying a '/' belongs to the
// prefix rule instead.
func isIP(expr string) bool {
	if strings.Contains(expr, "/") {
		return false
	}

	if base, ok := splitMask(expr); ok {
		return isAddrLiteral(strings.TrimSpace(base))
	}

	return isAddrLiteral(expr)
}

func isAddrLiteral(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}
