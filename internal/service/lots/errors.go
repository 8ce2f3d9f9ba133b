package lots

import "errors"

var ErrLotNotFound = errors.New("lot not found")
