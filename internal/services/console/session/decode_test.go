package session

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestDecodeRoleAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{name: "role", claims: jwt.MapClaims{"role": "Staff"}, want: "Staff"},
		{name: "Role", claims: jwt.MapClaims{"Role": "Admin"}, want: "Admin"},
		{name: "roles", claims: jwt.MapClaims{"roles": "Driver"}, want: "Driver"},
		{name: "Roles", claims: jwt.MapClaims{"Roles": "Owner"}, want: "Owner"},
		{name: "microsoft uri", claims: jwt.MapClaims{"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "Staff"}, want: "Staff"},
		{name: "array joined", claims: jwt.MapClaims{"roles": []any{"Staff", "Admin"}}, want: "Staff,Admin"},
		{name: "priority order", claims: jwt.MapClaims{"Role": "Admin", "role": "Staff"}, want: "Staff"},
		{name: "empty alias skipped", claims: jwt.MapClaims{"role": "", "Roles": "Provider"}, want: "Provider"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DecodeRole(mintToken(t, tc.claims))
			if !ok || got != tc.want {
				t.Fatalf("DecodeRole() = (%q, %v), want (%q, true)", got, ok, tc.want)
			}
		})
	}
}

func TestDecodeRoleNeverFailsLoudly(t *testing.T) {
	t.Parallel()

	noRole := mintToken(t, jwt.MapClaims{"sub": "42", "email": "staff@driveshare.vn"})
	payloadOnly := "x." + base64.RawURLEncoding.EncodeToString([]byte(`{"role":"Staff"}`)) + ".y"
	padded := "x." + base64.URLEncoding.EncodeToString([]byte(`{"role":"Admin!"}`)) + ".y"

	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "bad base64", token: "a.@@@.c"},
		{name: "payload not json", token: "a." + base64.RawURLEncoding.EncodeToString([]byte("hello")) + ".c"},
		{name: "json array payload", token: "a." + base64.RawURLEncoding.EncodeToString([]byte(`["role"]`)) + ".c"},
		{name: "no role claim", token: noRole},
		{name: "header ignored", token: payloadOnly, want: "Staff", wantOK: true},
		{name: "padded payload", token: padded, want: "Admin!", wantOK: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DecodeRole(tc.token)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("DecodeRole(%q) = (%q, %v), want (%q, %v)", tc.token, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDecodeRoleIgnoresExpiry(t *testing.T) {
	t.Parallel()

	token := mintToken(t, jwt.MapClaims{"role": "Staff", "exp": 1})
	if got, ok := DecodeRole(token); !ok || got != "Staff" {
		t.Fatalf("DecodeRole(expired) = (%q, %v), want (%q, true)", got, ok, "Staff")
	}
}
