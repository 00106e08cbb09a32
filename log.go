package main

import (
	stdlog "log"
	"time"
)

type logger int

var log logger

func (l *logger) Warn(format string, value ...any) {
	stdlog.Printf("\u001B[0;33m[WARN]\u001B[0;39m "+format, value...)
}

func (l *logger) Err(format string, value ...any) {
	stdlog.Printf("\u001B[0;31m[ERROR]\u001B[0;39m "+format, value...)
}

func (l *logger) Info(format string, value ...any) {
	stdlog.Printf("\u001B[0;32m[INFO]\u001B[0;39m "+format, value...)
}

func (l *logger) Fatal(format string, value ...any) {
	stdlog.Fatalf("\u001B[0;31m[FATAL]\u001B[0;39m "+format, value...)
}

// Request logs a served HTTP request, coloured by status class
func (l *logger) Request(method string, path string, status int, d time.Duration) {
	colour := "32"
	switch {
	case status >= 500:
		colour = "31"
	case status >= 400:
		colour = "33"
	}
	stdlog.Printf("\u001B[0;%sm[%d]\u001B[0;39m %s %s in %v\n", colour, status, method, path, d)
}

// measure logs the time elapsed between its call and the call of the returned func
func measure(name string) func() {
	start := time.Now()
	return func() {
		log.Info("%s took %v\n", name, time.Since(start))
	}
}
