package env

import (
	"os"
	"strconv"
)

// Env reads environment variables. Tests swap the process environment for
// a map.
type Env interface {
	Get(key string) string
	// Bool parses key as a boolean; unset or malformed values are false.
	Bool(key string) bool
}

type osEnv struct{}

func New() Env {
	return osEnv{}
}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (e osEnv) Bool(key string) bool {
	return parseBool(e.Get(key))
}

type mapEnv struct {
	m map[string]string
}

func NewFromMap(m map[string]string) Env {
	if m == nil {
		m = make(map[string]string)
	}
	return &mapEnv{m: m}
}

func (e *mapEnv) Get(key string) string {
	return e.m[key]
}

func (e *mapEnv) Bool(key string) bool {
	return parseBool(e.Get(key))
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
