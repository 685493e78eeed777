package types

import (
	"github.com/sivajeyabalan/blogapi/shared"
)

// ClientAccount is one signed-in account on this machine, persisted in
// accounts.json so switching accounts doesn't require re-entering credentials.
type ClientAccount struct {
	Email  string `json:"email"`
	UserId int64  `json:"userId"`
	Token  string `json:"token"`
	Host   string `json:"host,omitempty"`
}

// ClientAuth is the active session, persisted in auth.json. User is filled in
// by the who-am-I call and may lag the token by one request at startup.
type ClientAuth struct {
	ClientAccount
	User *shared.User `json:"user,omitempty"`
}
