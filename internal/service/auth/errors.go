package auth

import "errors"

var ErrAuthenticationFailed = errors.New("bad credentials")
