package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	PoolKey         ContextKey = "pool"
	TxKey           ContextKey = "tx"
	LoggerKey       ContextKey = "logger"
	RequestStartKey ContextKey = "request-start"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
