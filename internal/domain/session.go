package domain

import (
	"encoding/json"
	"time"
)

// Timestamp is a backend timestamp. The auth endpoints serialize Mongo
// documents, so created_at arrives either as a plain string or as the
// extended-JSON {"$date": <epoch ms or ISO string>} object; both decode
// into the string form.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Timestamp(s)
		return nil
	}

	var ext struct {
		Date json.RawMessage `json:"$date"`
	}
	if err := json.Unmarshal(data, &ext); err != nil || len(ext.Date) == 0 {
		*t = ""
		return nil
	}

	var ms int64
	if err := json.Unmarshal(ext.Date, &ms); err == nil {
		*t = Timestamp(time.UnixMilli(ms).UTC().Format(time.RFC3339))
		return nil
	}
	var ds string
	if err := json.Unmarshal(ext.Date, &ds); err == nil {
		*t = Timestamp(ds)
	}
	return nil
}

// User is the authenticated user profile returned by the backend.
type User struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt Timestamp `json:"created_at,omitempty"`
}

// Session is the locally persisted authentication state: the bearer token
// plus the profile it was issued for. It is created on login/signup and
// destroyed on logout or on any 401 from the backend.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}
