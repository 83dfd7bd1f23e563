package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// Identity derives the caller key. A bearer credential is hashed so the raw
// token never sits in memory as a map key; without one the first
// X-Forwarded-For hop, X-Real-IP or the connection address is used.
func Identity(authorization, forwardedFor, realIP, remoteAddr string) string {
	if authorization = strings.TrimSpace(authorization); authorization != "" {
		sum := sha256.Sum256([]byte(authorization))
		return "auth:" + hex.EncodeToString(sum[:])
	}
	if forwardedFor != "" {
		if first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0]); first != "" {
			return "ip:" + first
		}
	}
	if realIP = strings.TrimSpace(realIP); realIP != "" {
		return "ip:" + realIP
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return "ip:" + host
	}
	if remoteAddr != "" {
		return "ip:" + remoteAddr
	}
	return "unknown"
}
