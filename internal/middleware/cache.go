package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/studio-booking/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size < cw.limit {
        remain := cw.limit - cw.size
        switch {
        case cw.limit <= 0 || int64(len(b)) <= remain:
            cw.buf.Write(b)
        default:
            cw.buf.Write(b[:remain])
        }
    }
    cw.size += int64(len(b))
    return cw.ResponseWriter.Write(b)
}

// ResponseCache stores successful GET responses in Redis under
// "<prefix>:<sha1(route, query)>".  A nil client or a disabled config makes
// it a pass-through.
type ResponseCache struct {
    cfg config.CacheConfig
    rdb *redis.Client
}

func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) *ResponseCache {
    if cfg.TTL <= 0 {
        cfg.TTL = 30 * time.Second
    }
    return &ResponseCache{cfg: cfg, rdb: rdb}
}

func (rc *ResponseCache) enabled() bool { return rc != nil && rc.cfg.Enabled && rc.rdb != nil }

func (rc *ResponseCache) key(c echo.Context) string {
    tail := strings.Join([]string{"route", c.Path(), "q", c.Request().URL.RawQuery}, ":")
    sum := sha1.Sum([]byte(tail))
    return fmt.Sprintf("%s:%x", rc.cfg.Prefix, sum[:])
}

// Purge deletes every cached response under the prefix.
func (rc *ResponseCache) Purge(ctx context.Context) error {
    if !rc.enabled() {
        return nil
    }
    iter := rc.rdb.Scan(ctx, 0, rc.cfg.Prefix+":*", 100).Iterator()
    var keys []string
    for iter.Next(ctx) {
        keys = append(keys, iter.Val())
    }
    if err := iter.Err(); err != nil {
        return fmt.Errorf("scan cache keys: %w", err)
    }
    if len(keys) == 0 {
        return nil
    }
    return rc.rdb.Del(ctx, keys...).Err()
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    out := make([]byte, 8+len(hdrJSON)+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:8+len(hdrJSON)], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(bs) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(bs[0:4]))
    hlen := int(binary.BigEndian.Uint32(bs[4:8]))
    if hlen < 0 || 8+hlen > len(bs) {
        return 0, nil, nil, false
    }
    hdr := make(http.Header)
    if hlen > 0 {
        if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
            return 0, nil, nil, false
        }
    }
    return status, hdr, bs[8+hlen:], true
}

// replayable reports whether header k belongs to the cached response
// itself.  CORS headers and Vary are written per request by the outer
// middleware, so they are neither stored nor replayed.
func replayable(k string) bool {
    switch {
    case strings.EqualFold(k, "Content-Length"), strings.EqualFold(k, "X-Cache"), strings.EqualFold(k, echo.HeaderVary):
        return false
    case len(k) >= len("Access-Control-") && strings.EqualFold(k[:len("Access-Control-")], "Access-Control-"):
        return false
    }
    return true
}

// Middleware serves hits straight from Redis (X-Cache: HIT) and records
// 200 responses on a miss.  Bodies larger than MaxBodyBytes are not cached.
func (rc *ResponseCache) Middleware() echo.MiddlewareFunc {
    if !rc.enabled() {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    maxBody := int64(rc.cfg.MaxBodyBytes)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !rc.cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }
            ctx := c.Request().Context()
            key := rc.key(c)

            if bs, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
                if status, hdr, body, ok := decodePayload(bs); ok {
                    for k, vals := range hdr {
                        if !replayable(k) {
                            continue
                        }
                        c.Response().Header()[http.CanonicalHeaderKey(k)] = append([]string(nil), vals...)
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    _, _ = c.Response().Write(body)
                    return nil
                }
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }
            if cw.status != http.StatusOK || (maxBody > 0 && cw.size > maxBody) {
                return nil
            }
            hdr := make(http.Header)
            for k, vals := range c.Response().Header() {
                if replayable(k) {
                    hdr[k] = append([]string(nil), vals...)
                }
            }
            if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
                _ = rc.rdb.SetEx(context.Background(), key, payload, rc.cfg.TTL).Err()
            }
            return nil
        }
    }
}
