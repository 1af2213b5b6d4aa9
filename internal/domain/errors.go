package domain

import "errors"

var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrReceiptDecode   = errors.New("invalid JSON")
	ErrPolicyNotFound  = errors.New("policy not found")
	ErrPolicyDecode    = errors.New("invalid policy YAML")
)
