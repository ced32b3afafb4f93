package vo

import "errors"

var ErrRequestNotFound = errors.New("service request not found")
var ErrRequestNotPending = errors.New("service request is not pending")
var ErrInvalidRequestPayload = errors.New("invalid service request payload")
var ErrNoRequestSelected = errors.New("no service request selected")
