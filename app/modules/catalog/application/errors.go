package catalogservice

import "errors"

var ErrUnknownTag = errors.New("unknown tag")
