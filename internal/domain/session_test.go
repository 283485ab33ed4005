package domain

import (
	"encoding/json"
	"testing"
)

func TestUserDecodesExtendedJSONDate(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Timestamp
	}{
		{"plain string", `{"email":"a@b.c","created_at":"2026-08-20T10:00:00Z"}`, "2026-08-20T10:00:00Z"},
		{"epoch millis object", `{"email":"a@b.c","created_at":{"$date":1755684000000}}`, "2025-08-20T10:00:00Z"},
		{"iso string object", `{"email":"a@b.c","created_at":{"$date":"2026-08-20T10:00:00Z"}}`, "2026-08-20T10:00:00Z"},
		{"null", `{"email":"a@b.c","created_at":null}`, ""},
		{"absent", `{"email":"a@b.c"}`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(c.body), &u); err != nil {
				t.Fatalf("decoding user: %v", err)
			}
			if u.CreatedAt != c.want {
				t.Errorf("created_at = %q, want %q", u.CreatedAt, c.want)
			}
			if u.Email != "a@b.c" {
				t.Errorf("email = %q, want a@b.c", u.Email)
			}
		})
	}
}
