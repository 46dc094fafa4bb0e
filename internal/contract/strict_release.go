//go:build !navdebug

package contract

const strict = false
