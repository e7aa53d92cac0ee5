package typerules

import (
	"net/netip"
	"strings"
)

// isPrefix reports whether expr is an IP literal followed by '/' and a
// prefix length, the bare identifier net (the route's own prefix), or a
// .mask() call on net. A .mask() call on a bare address already classified
// as ip under the higher-priority rule and is rejected here.
func isPrefix(expr string) bool {
	if strings.Contains(expr, "/") {
		_, err := netip.ParsePrefix(expr)
		return err == nil
	}

	if expr == "net" {
		return true
	}

	if base, ok := splitMask(expr); ok {
		base = strings.TrimSpace(base)
		if isAddrLiteral(base) {
			return false
		}

		return base == "net" || strings.HasPrefix(base, "net.")
	}

	return false
}
