package config

import (
    "log"
    "os"
    "strconv"
    "strings"
    "time"
)

// Helper functions shared by the loaders in this package.  The must*
// variants stop the process on a missing or malformed value; the env*
// variants fall back to a default.

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustDur is like must() but parses the value as a time.Duration.
func mustDur(key string) time.Duration {
    s := must(key)
    d, err := time.ParseDuration(s)
    if err != nil {
        log.Fatalf("invalid duration for %s: %q", key, s)
    }
    return d
}

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }
func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" { return d }
    switch strings.ToLower(v) {
    case "1", "true", "yes", "on": return true
    case "0", "false", "no", "off": return false
    }
    return d
}
func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}
func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k); if v == "" { return d }
    if dur, err := time.ParseDuration(v); err == nil { return dur }
    return d
}
