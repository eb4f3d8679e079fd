package upstream

import (
	"bytes"
	"encoding/json"

	"storefront/internal/domain/entity"
)

// envelope is the union of every top-level field the remote API uses to
// report an outcome. Endpoints disagree on which one carries success.
type envelope struct {
	Status         string          `json:"status"`
	StatusMsg      string          `json:"statusMsg"`
	Message        string          `json:"message"`
	Token          string          `json:"token"`
	User           *entity.User    `json:"user"`
	NumOfCartItems int             `json:"numOfCartItems"`
	Results        int             `json:"results"`
	Data           json.RawMessage `json:"data"`
	Session        *struct {
		URL string `json:"url"`
	} `json:"session"`
	Errors *struct {
		Msg string `json:"msg"`
	} `json:"errors"`

	// decoded is false when the body was empty or not JSON
	decoded bool
}

func decodeEnvelope(body []byte) *envelope {
	env := &envelope{}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return env
	}

	// /orders/user/:id answers with a bare array
	if trimmed[0] == '[' {
		env.Data = json.RawMessage(trimmed)
		env.decoded = true

		return env
	}

	if err := json.Unmarshal(trimmed, env); err != nil {
		return env
	}
	env.decoded = true

	return env
}

// reason picks the most specific human message the server gave.
func (e *envelope) reason() string {
	if e.Errors != nil && e.Errors.Msg != "" {
		return e.Errors.Msg
	}
	if e.Message != "" {
		return e.Message
	}

	return e.StatusMsg
}

func (e *envelope) hasData() bool {
	return len(e.Data) > 0 && !bytes.Equal(e.Data, []byte("null"))
}

// successRule decides whether a 2xx response is a business success.
type successRule func(env *envelope) bool

func messageIs(want string) successRule {
	return func(env *envelope) bool { return env.Message == want }
}

func statusIs(want string) successRule {
	return func(env *envelope) bool { return env.Status == want }
}

func statusMsgIs(want string) successRule {
	return func(env *envelope) bool { return env.StatusMsg == want }
}

func hasToken(env *envelope) bool {
	return env.Token != ""
}

func hasData(env *envelope) bool {
	return env.hasData()
}

// anyStatus accepts every 2xx; used by the plain catalog reads.
func anyStatus(*envelope) bool {
	return true
}

func anyOf(rules ...successRule) successRule {
	return func(env *envelope) bool {
		for _, rule := range rules {
			if rule(env) {
				return true
			}
		}

		return false
	}
}
