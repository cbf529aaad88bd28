package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMint(t *testing.T) {
	token, cookie, err := Mint()
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}
	if len(token) != tokenBytes*2 {
		t.Fatalf("token length = %d, want %d", len(token), tokenBytes*2)
	}
	if cookie.Name != CookieName {
		t.Fatalf("cookie name = %s, want %s", cookie.Name, CookieName)
	}
	if cookie.Value != token {
		t.Fatal("cookie value must match the issued token")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatal("cookie must be SameSite=Strict")
	}

	other, _, err := Mint()
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}
	if other == token {
		t.Fatal("two mints must not produce the same token")
	}
}

func TestValidate(t *testing.T) {
	token, cookie, err := Mint()
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	tests := []struct {
		name      string
		cookie    *http.Cookie
		submitted string
		want      bool
	}{
		{
			name:      "matching pair",
			cookie:    cookie,
			submitted: token,
			want:      true,
		},
		{
			name:      "mismatched token",
			cookie:    cookie,
			submitted: "deadbeef",
			want:      false,
		},
		{
			name:      "empty submitted token",
			cookie:    cookie,
			submitted: "",
			want:      false,
		},
		{
			name:      "missing cookie",
			cookie:    nil,
			submitted: token,
			want:      false,
		},
		{
			name:      "empty cookie value",
			cookie:    &http.Cookie{Name: CookieName, Value: ""},
			submitted: token,
			want:      false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/checkout", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			if got := Validate(r, tt.submitted); got != tt.want {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
