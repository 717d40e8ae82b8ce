package parser

import "errors"

var ErrEmailToken = errors.New("no email token after marker")
