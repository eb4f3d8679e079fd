package entity

// Session is the client's view of authentication. A present token does not
// imply a valid one; it is only ever exercised against the server.
type Session struct {
	Token string `json:"-"`
	User  *User  `json:"user,omitempty"`
}

// Authenticated reports whether a token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// CartMirror is the last item count fetched from the remote cart.
type CartMirror struct {
	ItemCount int `json:"itemCount"`
}
