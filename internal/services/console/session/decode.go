package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RoleClaimKeys lists the claim names consulted for a role, in priority order.
var RoleClaimKeys = []string{
	"role",
	"Role",
	"roles",
	"Roles",
	"http://schemas.microsoft.com/ws/2008/06/identity/claims/role",
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeRole extracts the role claim from a bearer token without verifying
// its signature or expiry. It never fails loudly: any malformed input yields
// ("", false).
//
// The first claim in RoleClaimKeys holding a non-empty value wins. Array
// claims are joined with ",".
func DecodeRole(token string) (string, bool) {
	claims, ok := decodeClaims(token)
	if !ok {
		return "", false
	}
	for _, key := range RoleClaimKeys {
		if role := claimString(claims[key]); role != "" {
			return role, true
		}
	}
	return "", false
}

func decodeClaims(token string) (jwt.MapClaims, bool) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, false
	}
	payload, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, false
	}
	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		return nil, false
	}
	return claims, true
}

func claimString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return fmt.Sprint(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := claimString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
